package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/arithma"
)

const historyFile = ".arithma_history"

const replHelp = `name := expr   assign a variable; cells using it are recalculated
:vars          list variables
:units         list units
:mode [rad|deg|sci|plain]
               show or change the angle and notation modes
:link expr     print a link which pastes the value of expr
:solve c, ...  find the roots of a polynomial, highest degree first
:quit          exit`

// repl runs an interactive session and returns the exit status.
func (c *calc) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if c.command(line) {
				return 0
			}
			continue
		}
		c.cell(line)
	}
}

// command runs a REPL command. It returns true if the session should end.
func (c *calc) command(line string) bool {
	cmd, arg := line, ""
	if k := strings.IndexAny(line, " \t"); k >= 0 {
		cmd, arg = line[:k], strings.TrimSpace(line[k+1:])
	}
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(c.out, replHelp)
	case ":vars":
		for _, name := range c.env.Names() {
			v, _ := c.env.Lookup(name)
			fmt.Fprintf(c.out, "%s = %s\n", name, v.Format(c.ctx, c.sf))
		}
	case ":units":
		for _, u := range c.env.Units().Units() {
			if u.IsRoot() {
				fmt.Fprintln(c.out, u.ID())
				continue
			}
			fmt.Fprintf(c.out, "%s = %g %s\n", u.ID(), u.Worth(), u.Base().ID())
		}
	case ":mode":
		if !c.mode(arg) {
			fmt.Fprintf(c.out, "unknown mode %q\n", arg)
			break
		}
		angle, notation := "deg", "plain"
		if c.ctx.Radians {
			angle = "rad"
		}
		if c.ctx.Scientific {
			notation = "sci"
		}
		fmt.Fprintln(c.out, angle, notation)
	case ":link":
		in := c.env.NewInterpreter()
		v, err := in.EvaluateString(c.ctx, arg)
		in.Close()
		if err != nil {
			c.fail(arg, err)
			break
		}
		fmt.Fprintln(c.out, arithma.EncodeLink(v))
	case ":solve":
		roots, err := c.solve(strings.Split(arg, ","))
		if err != nil {
			fmt.Fprintln(c.out, err)
			break
		}
		c.roots(roots)
	default:
		fmt.Fprintf(c.out, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return false
}

// mode changes the evaluation modes and recalculates every cell.
func (c *calc) mode(arg string) bool {
	ctx := c.ctx
	switch arg {
	case "":
		return true
	case "rad":
		ctx.Radians = true
	case "deg":
		ctx.Radians = false
	case "sci":
		ctx.Scientific = true
	case "plain":
		ctx.Scientific = false
	default:
		return false
	}
	if ctx != c.ctx {
		c.ctx = ctx
		c.env.Refresh(ctx)
	}
	return true
}
