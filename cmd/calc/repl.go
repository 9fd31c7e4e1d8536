package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

func replMain(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	s := &cfg.settings
	if f, ok := any(cc.In).(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termLoop(s, f, cc.Out)
	}
	return basicLoop(newSession(s, cc.Out), cc.In, cc.Out)
}

// session is the state of one repl: its functions and how it evaluates and
// prints.
type session struct {
	ctx    *calc.Context
	reg    *calc.Registry
	pal    *palette
	format string
}

func newSession(s *Settings, w io.Writer) *session {
	return &session{
		ctx:    s.context(),
		reg:    calc.NewRegistry(),
		pal:    newPalette(s.colorize(w)),
		format: s.Format,
	}
}

// basicLoop handles input that is not a terminal. No prompt is shown.
func basicLoop(ses *session, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ses.handle(w, sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// termLoop handles an interactive terminal with line editing and history.
func termLoop(s *Settings, f *os.File, w io.Writer) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		log.Printf("failed to set raw mode: %v", err)
		return basicLoop(newSession(s, w), f, w)
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, w}, s.Prompt)
	// The terminal translates newlines for raw mode, so it is the writer for
	// everything the session prints.
	ses := newSession(s, w)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if ses.handle(t, line) {
			return nil
		}
	}
}

// handle processes one line of input and writes its results to w. The result
// is true if the session should end.
func (ses *session) handle(w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return ses.command(w, line[1:])
	}
	switch calc.Classify(line) {
	case calc.LineDefinition:
		def, err := ses.reg.Define(line)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		fmt.Fprintln(w, ses.pal.note("defined %s", def.Name))
	case calc.LineCall:
		name, args, err := calc.ParseCall(line)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		n, err := ses.reg.Instantiate(name, args)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		ses.eval(w, n)
	default:
		n, err := calc.ParseString(line)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		ses.eval(w, n)
	}
	return false
}

func (ses *session) eval(w io.Writer, n calc.Node) {
	r, err := ses.ctx.Eval(n)
	if err != nil {
		ses.fail(w, err)
		return
	}
	fmt.Fprintln(w, ses.pal.result(ses.format, r))
}

func (ses *session) fail(w io.Writer, err error) {
	fmt.Fprintln(w, ses.pal.err("error: %v", err))
}

func (ses *session) command(w io.Writer, cmd string) bool {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "q", "quit":
		return true
	case "funcs":
		for _, name := range ses.reg.Names() {
			def, _ := ses.reg.Lookup(name)
			fmt.Fprintln(w, ses.pal.note("%v", def))
		}
	case "tree":
		n, err := calc.ParseString(arg)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		fmt.Fprintln(w, ses.pal.note("%v", n))
	case "rpn":
		r, err := rpn(arg, ses.format)
		if err != nil {
			ses.fail(w, err)
			return false
		}
		fmt.Fprintln(w, ses.pal.note("%s", r))
	default:
		ses.fail(w, fmt.Errorf("unknown command %q", ":"+name))
	}
	return false
}
