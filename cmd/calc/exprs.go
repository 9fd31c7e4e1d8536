package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/zephyrtronium/calc"
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	s := &cfg.settings
	ctx := s.context()
	return each(cc, s, args, func(src string) (string, error) {
		n, err := calc.ParseString(src)
		if err != nil {
			return "", err
		}
		r, err := ctx.Eval(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(s.Format, r), nil
	})
}

func treeMain(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	return each(cc, &cfg.settings, args, func(src string) (string, error) {
		n, err := calc.ParseString(src)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	})
}

func rpnMain(cfg *RpnConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rpn.Parse(cc, args)
	if err != nil {
		return err
	}
	s := &cfg.settings
	return each(cc, s, args, func(src string) (string, error) {
		return rpn(src, s.Format)
	})
}

// rpn formats an expression in postfix order followed by the value of
// evaluating that form.
func rpn(src, format string) (string, error) {
	n, err := calc.ParseString(src)
	if err != nil {
		return "", err
	}
	toks := calc.Postfix(n)
	r, err := calc.EvalPostfix(toks)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, " ") + " = " + fmt.Sprintf(format, r), nil
}

func each(cc *cli.Context, s *Settings, args []string, f func(string) (string, error)) error {
	srcs, err := inputs(args, cc.In)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return run(cc.Out, newPalette(s.colorize(cc.Out)), srcs, f)
}

// inputs returns args, or the non-blank lines of r if there are no args.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			srcs = append(srcs, sc.Text())
		}
	}
	return srcs, sc.Err()
}

// run writes f of each source to w. Failures are reported inline, and the
// error is non-nil if any source failed.
func run(w io.Writer, pal *palette, srcs []string, f func(string) (string, error)) error {
	failed := 0
	for _, src := range srcs {
		r, err := f(src)
		if err != nil {
			fmt.Fprintln(w, pal.err("%s: %v", src, err))
			failed++
			continue
		}
		fmt.Fprintln(w, pal.result("%s", r))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d failed", failed, len(srcs))
	}
	return nil
}
