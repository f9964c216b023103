package proto

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

var CRLF = "\r\n"

const (
	REPLY_STATUS  = '+'
	REPLY_ERROR   = '-'
	REPLY_INTEGER = ':'
	REPLY_STRING  = '$'
	REPLY_ARRAY   = '*'
)

const (
	MAX_BULK_LEN  = 512 * 1024 * 1024
	MAX_ARRAY_LEN = 1024 * 1024
)

var ErrProtocol = errors.New("protocol error")

// Reply is a decoded reply. Value is nil for a null bulk string.
type Reply struct {
	Type    byte
	Value   []byte
	Element []*Reply
}

// SplitArgs turns "insert 0 foo\r\n" into ["insert", "0", "foo"].
func SplitArgs(line []byte) []string {
	fields := bytes.Fields(line)
	args := make([]string, len(fields))
	for i, f := range fields {
		args[i] = string(f)
	}
	return args
}

func Status(msg string) []byte {
	buf := make([]byte, 0, 1+len(msg)+2)
	buf = append(buf, REPLY_STATUS)
	buf = append(buf, msg...)
	return append(buf, CRLF...)
}

// Error replies with "-ERR <err>". Newlines in the message are flattened so
// the reply stays on one line.
func Error(err error) []byte {
	msg := bytes.ReplaceAll([]byte(err.Error()), []byte{'\n'}, []byte{' '})
	buf := make([]byte, 0, 5+len(msg)+2)
	buf = append(buf, REPLY_ERROR)
	buf = append(buf, "ERR "...)
	buf = append(buf, msg...)
	return append(buf, CRLF...)
}

func Integer(n int) []byte {
	buf := make([]byte, 0, 1+intLen(n)+2)
	buf = append(buf, REPLY_INTEGER)
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, CRLF...)
}

// Bulk -> $3\r\nfoo\r\n
func Bulk(s string) []byte {
	return appendBulk(make([]byte, 0, bulkLen(len(s))), s)
}

// NullBulk -> $-1\r\n
func NullBulk() []byte {
	return []byte("$-1" + CRLF)
}

// Array encodes items as an array of bulk strings.
func Array(items []string) []byte {
	totlen := 1 + intLen(len(items)) + 2
	for _, item := range items {
		totlen += bulkLen(len(item))
	}
	buf := make([]byte, 0, totlen)
	buf = append(buf, REPLY_ARRAY)
	buf = strconv.AppendInt(buf, int64(len(items)), 10)
	buf = append(buf, CRLF...)
	for _, item := range items {
		buf = appendBulk(buf, item)
	}
	return buf
}

func appendBulk(buf []byte, s string) []byte {
	buf = append(buf, REPLY_STRING)
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, CRLF...)
	buf = append(buf, s...)
	return append(buf, CRLF...)
}

// ReadReply decodes one reply from r.
func ReadReply(r *bufio.Reader) (*Reply, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if len(line) == 0 {
		return nil, errors.Wrap(ErrProtocol, "empty reply line")
	}
	reply := &Reply{Type: line[0]}
	switch line[0] {
	case REPLY_STATUS, REPLY_ERROR, REPLY_INTEGER:
		reply.Value = line[1:]
	case REPLY_STRING:
		n, err := strconv.Atoi(string(line[1:]))
		if err != nil {
			return nil, errors.Wrapf(ErrProtocol, "bad bulk length %q", line[1:])
		}
		if n < 0 {
			return reply, nil
		}
		if n > MAX_BULK_LEN {
			return nil, errors.Wrapf(ErrProtocol, "bulk length %d exceeds %d", n, MAX_BULK_LEN)
		}
		data := make([]byte, n+2)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		if !bytes.HasSuffix(data, []byte(CRLF)) {
			return nil, errors.Wrap(ErrProtocol, "bulk string not terminated by CRLF")
		}
		reply.Value = data[:n]
	case REPLY_ARRAY:
		n, err := strconv.Atoi(string(line[1:]))
		if err != nil || n < 0 {
			return nil, errors.Wrapf(ErrProtocol, "bad array length %q", line[1:])
		}
		if n > MAX_ARRAY_LEN {
			return nil, errors.Wrapf(ErrProtocol, "array length %d exceeds %d", n, MAX_ARRAY_LEN)
		}
		reply.Element = make([]*Reply, n)
		for i := range reply.Element {
			if reply.Element[i], err = ReadReply(r); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.Wrapf(ErrProtocol, "unknown reply type %q", line[0])
	}
	return reply, nil
}

func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	if !bytes.HasSuffix(line, []byte(CRLF)) {
		return nil, errors.Wrap(ErrProtocol, "line not terminated by CRLF")
	}
	return line[:len(line)-2], nil
}

func intLen(i int) int {
	intlen := 0
	if i < 0 {
		intlen++
		i = -i
	}
	for {
		intlen++
		i /= 10
		if i == 0 {
			break
		}
	}
	return intlen
}

func bulkLen(i int) int {
	return 1 + intLen(i) + 2 + i + 2 // $3\r\nSET\r\n
}
