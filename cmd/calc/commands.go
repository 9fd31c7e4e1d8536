package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "calc").
		WithSynopsis("calc [opts] command [opts]").
		WithDescription("calc evaluates arithmetic expressions and function templates.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return calcMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			ReplCommand(cfg),
			TreeCommand(cfg),
			RpnCommand(cfg))
}

func calcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.resolve(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [exprs]").
		WithDescription("evaluate expressions given as arguments, or one per line of stdin").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalMain(cfg, cc, args)
		})
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithSynopsis("repl").
		WithDescription(replDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return replMain(cfg, cc, args)
		})
}

const replDescription = `repl reads lines and handles each one by its form.

  fn name(a,b){body}   defines or replaces a function
  name(1,2)            calls a defined function
  anything else        is evaluated as an expression

Lines starting with a colon are commands:

  :funcs        list defined functions
  :tree EXPR    show the parse tree of EXPR
  :rpn EXPR     show EXPR in postfix order
  :quit         stop reading

Functions last for the session only.`

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [exprs]").
		WithDescription("print fully bracketed parse trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return treeMain(cfg, cc, args)
		})
}

func RpnCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RpnConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rpn, "rpn").
		WithSynopsis("rpn [exprs]").
		WithDescription("print expressions in postfix order with their values").
		WithRun(func(cc *cli.Context, args []string) error {
			return rpnMain(cfg, cc, args)
		})
}
