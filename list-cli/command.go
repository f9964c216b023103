package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-hclog"

	"mylinkedlist/list"
	"mylinkedlist/proto"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errWrongArity     = errors.New("wrong number of arguments")
	errNotInteger     = errors.New("value is not an integer")
	errNoCursor       = errors.New("no open cursor, use CURSOR <index>")
)

type cliCommandProc func(c *cliContext, args []string) []byte

type cliCommand struct {
	name  string         // 命令名字
	proc  cliCommandProc // 命令实现函数
	arity int            // 参数个数, 包含命令名
}

// cliContext is the state one shell session works on.
type cliContext struct {
	list   *list.List[string]
	cursor *list.Cursor[string]
	logger hclog.Logger
}

var cliCommandTable = []cliCommand{
	{"lpush", lpushCommand, 2},
	{"rpush", rpushCommand, 2},
	{"push", pushCommand, 2},
	{"insert", insertCommand, 3},
	{"get", getCommand, 2},
	{"set", setCommand, 3},
	{"del", delCommand, 2},
	{"lpop", lpopCommand, 1},
	{"rpop", rpopCommand, 1},
	{"first", firstCommand, 1},
	{"last", lastCommand, 1},
	{"rem", remCommand, 2},
	{"index", indexCommand, 2},
	{"len", lenCommand, 1},
	{"empty", emptyCommand, 1},
	{"clear", clearCommand, 1},
	{"dump", dumpCommand, 1},
	{"cursor", cursorCommand, 2},
	{"next", nextCommand, 1},
	{"prev", prevCommand, 1},
	{"hasnext", hasNextCommand, 1},
	{"hasprev", hasPrevCommand, 1},
	{"nidx", nextIndexCommand, 1},
	{"pidx", previousIndexCommand, 1},
	{"cset", cursorSetCommand, 2},
	{"cadd", cursorAddCommand, 2},
	{"cdel", cursorDelCommand, 1},
}

func newCliContext(logger hclog.Logger) *cliContext {
	return &cliContext{
		list:   list.New[string](),
		logger: logger,
	}
}

func lookupCommand(name string) *cliCommand {
	name = strings.ToLower(name)
	for i := range cliCommandTable {
		if cliCommandTable[i].name == name {
			return &cliCommandTable[i]
		}
	}
	return nil
}

// processCommand runs one command line and returns the encoded reply.
func (c *cliContext) processCommand(args []string) []byte {
	cmd := lookupCommand(args[0])
	if cmd == nil {
		c.logger.Warn("unknown command", "name", args[0])
		return proto.Error(errors.Wrapf(errUnknownCommand, "%q", args[0]))
	}
	if len(args) != cmd.arity {
		return proto.Error(errors.Wrapf(errWrongArity, "%s", cmd.name))
	}
	c.logger.Debug("process command", "name", cmd.name, "args", args[1:])
	return cmd.proc(c, args)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errNotInteger, "%q", s)
	}
	return i, nil
}

func boolReply(b bool) []byte {
	if b {
		return proto.Integer(1)
	}
	return proto.Integer(0)
}

// peekReply is valueReply, except an empty list gives a null bulk.
func peekReply(val string, err error) []byte {
	if errors.Is(err, list.ErrEmptyList) {
		return proto.NullBulk()
	}
	return valueReply(val, err)
}

func valueReply(val string, err error) []byte {
	if err != nil {
		return proto.Error(err)
	}
	return proto.Bulk(val)
}

func lpushCommand(c *cliContext, args []string) []byte {
	c.list.AddFirst(args[1])
	return proto.Integer(c.list.Len())
}

func rpushCommand(c *cliContext, args []string) []byte {
	c.list.AddLast(args[1])
	return proto.Integer(c.list.Len())
}

func pushCommand(c *cliContext, args []string) []byte {
	return boolReply(c.list.Add(args[1]))
}

func insertCommand(c *cliContext, args []string) []byte {
	index, err := parseIndex(args[1])
	if err != nil {
		return proto.Error(err)
	}
	if err := c.list.Insert(index, args[2]); err != nil {
		return proto.Error(err)
	}
	return proto.Status("OK")
}

func getCommand(c *cliContext, args []string) []byte {
	index, err := parseIndex(args[1])
	if err != nil {
		return proto.Error(err)
	}
	return valueReply(c.list.Get(index))
}

func setCommand(c *cliContext, args []string) []byte {
	index, err := parseIndex(args[1])
	if err != nil {
		return proto.Error(err)
	}
	return valueReply(c.list.Set(index, args[2]))
}

func delCommand(c *cliContext, args []string) []byte {
	index, err := parseIndex(args[1])
	if err != nil {
		return proto.Error(err)
	}
	return valueReply(c.list.RemoveAt(index))
}

func lpopCommand(c *cliContext, args []string) []byte {
	return valueReply(c.list.RemoveFirst())
}

func rpopCommand(c *cliContext, args []string) []byte {
	return valueReply(c.list.RemoveLast())
}

func firstCommand(c *cliContext, args []string) []byte {
	return peekReply(c.list.First())
}

func lastCommand(c *cliContext, args []string) []byte {
	return peekReply(c.list.Last())
}

func remCommand(c *cliContext, args []string) []byte {
	return boolReply(c.list.RemoveValue(args[1]))
}

func indexCommand(c *cliContext, args []string) []byte {
	return proto.Integer(c.list.IndexOf(args[1]))
}

func lenCommand(c *cliContext, args []string) []byte {
	return proto.Integer(c.list.Len())
}

func emptyCommand(c *cliContext, args []string) []byte {
	return boolReply(c.list.IsEmpty())
}

func clearCommand(c *cliContext, args []string) []byte {
	c.list.Clear()
	return proto.Status("OK")
}

func dumpCommand(c *cliContext, args []string) []byte {
	return proto.Array(c.list.ToSlice())
}

func cursorCommand(c *cliContext, args []string) []byte {
	index, err := parseIndex(args[1])
	if err != nil {
		return proto.Error(err)
	}
	cursor, err := c.list.Cursor(index)
	if err != nil {
		return proto.Error(err)
	}
	c.cursor = cursor
	return proto.Status("OK")
}

func nextCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return valueReply(c.cursor.Next())
}

func prevCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return valueReply(c.cursor.Previous())
}

func hasNextCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return boolReply(c.cursor.HasNext())
}

func hasPrevCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return boolReply(c.cursor.HasPrevious())
}

func nextIndexCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return proto.Integer(c.cursor.NextIndex())
}

func previousIndexCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	return proto.Integer(c.cursor.PreviousIndex())
}

func cursorSetCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	if err := c.cursor.Set(args[1]); err != nil {
		return proto.Error(err)
	}
	return proto.Status("OK")
}

func cursorAddCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	if err := c.cursor.Add(args[1]); err != nil {
		return proto.Error(err)
	}
	return proto.Status("OK")
}

func cursorDelCommand(c *cliContext, args []string) []byte {
	if c.cursor == nil {
		return proto.Error(errNoCursor)
	}
	if err := c.cursor.Remove(); err != nil {
		return proto.Error(err)
	}
	return proto.Status("OK")
}
