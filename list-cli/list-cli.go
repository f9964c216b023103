package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"mylinkedlist/proto"
)

type cliConfig struct {
	prompt  string
	raw     bool // print replies in wire form
	verbose bool
}

var config cliConfig

// repl reads one command per line from in until EOF or QUIT.
func repl(c *cliContext, in io.Reader, out io.Writer, interactive bool) error {
	reader := bufio.NewReader(in)
	for {
		if interactive {
			fmt.Fprint(out, config.prompt)
		}
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			args := proto.SplitArgs(line)
			if len(args) > 0 {
				if strings.EqualFold(args[0], "quit") {
					return nil
				}
				if err := writeReply(out, c.processCommand(args)); err != nil {
					return err
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func writeReply(out io.Writer, reply []byte) error {
	if config.raw {
		_, err := out.Write(reply)
		return err
	}
	r, err := proto.ReadReply(bufio.NewReader(bytes.NewReader(reply)))
	if err != nil {
		return err
	}
	renderReply(out, r)
	return nil
}

// renderReply prints a reply the way redis-cli does.
func renderReply(out io.Writer, r *proto.Reply) {
	switch r.Type {
	case proto.REPLY_STATUS:
		fmt.Fprintf(out, "%s\n", r.Value)
	case proto.REPLY_ERROR:
		fmt.Fprintf(out, "(error) %s\n", r.Value)
	case proto.REPLY_INTEGER:
		fmt.Fprintf(out, "(integer) %s\n", r.Value)
	case proto.REPLY_STRING:
		if r.Value == nil {
			fmt.Fprintln(out, "(nil)")
		} else {
			fmt.Fprintf(out, "%q\n", r.Value)
		}
	case proto.REPLY_ARRAY:
		if len(r.Element) == 0 {
			fmt.Fprintln(out, "(empty array)")
		}
		for i, e := range r.Element {
			fmt.Fprintf(out, "%d) ", i+1)
			renderReply(out, e)
		}
	}
}

func main() {
	flag.StringVar(&config.prompt, "prompt", "list> ", "prompt shown when stdin is a terminal")
	flag.BoolVar(&config.raw, "raw", false, "print replies in wire form")
	flag.BoolVar(&config.verbose, "v", false, "log every command")
	flag.Parse()

	level := hclog.Info
	if config.verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "list-cli",
		Level:  level,
		Output: os.Stderr,
	})

	interactive := isTerminal(int(os.Stdin.Fd()))
	logger.Debug("starting", "interactive", interactive, "raw", config.raw)
	if err := repl(newCliContext(logger), os.Stdin, os.Stdout, interactive); err != nil {
		logger.Error("repl failed", "error", err)
		os.Exit(1)
	}
}
