package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/zephyrtronium/calc"
)

type MainConfig struct {
	Config    string `cli:"name=config desc='yaml settings file (default $CALC_CONFIG)'"`
	Prompt    string `cli:"name=prompt desc='repl prompt'"`
	Format    string `cli:"name=fmt desc='result formatting verb'"`
	Precision int    `cli:"name=p aliases=prec desc='bits of precision, 0 for float64'"`
	Color     string `cli:"name=color desc='auto, always, or never'"`

	Main *cli.Command

	settings Settings
}

// Settings are the options in effect after combining the settings file with
// the command line.
type Settings struct {
	Prompt    string `yaml:"prompt"`
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
	Color     string `yaml:"color"`
}

// maxPrecision is the largest precision in bits the settings accept.
const maxPrecision = 1 << 16

func defaultSettings() Settings {
	return Settings{
		Prompt: "> ",
		Format: "%g",
		Color:  "auto",
	}
}

// parseSettings overlays a yaml document onto s. Unknown keys are errors.
func parseSettings(data []byte, s *Settings) error {
	if err := yaml.UnmarshalWithOptions(data, s, yaml.Strict()); err != nil {
		return err
	}
	return s.validate()
}

func (s *Settings) validate() error {
	if s.Precision < 0 || s.Precision > maxPrecision {
		return fmt.Errorf("%w: precision (%d) must be between 0 and %d", cli.ErrUsage, s.Precision, maxPrecision)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always, or never, not %q", cli.ErrUsage, s.Color)
	}
	if !strings.Contains(s.Format, "%") {
		return fmt.Errorf("%w: format %q has no verb", cli.ErrUsage, s.Format)
	}
	return nil
}

// resolve loads the settings file, if any, and applies options given on the
// command line over it.
func (cfg *MainConfig) resolve() error {
	s := defaultSettings()
	path := cfg.Config
	if path == "" {
		path = os.Getenv("CALC_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read settings: %w", err)
		}
		if err := parseSettings(data, &s); err != nil {
			return fmt.Errorf("error in %s: %w", path, err)
		}
	}
	if cfg.isSet("prompt") {
		s.Prompt = cfg.Prompt
	}
	if cfg.isSet("fmt") {
		s.Format = cfg.Format
	}
	if cfg.isSet("p") {
		s.Precision = cfg.Precision
	}
	if cfg.isSet("color") {
		s.Color = cfg.Color
	}
	if err := s.validate(); err != nil {
		return err
	}
	cfg.settings = s
	return nil
}

// isSet reports whether an option was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (s *Settings) context() *calc.Context {
	return calc.NewContext(calc.Prec(uint(s.Precision)))
}

// colorize decides whether output to w gets colors.
func (s *Settings) colorize(w io.Writer) bool {
	switch s.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// palette formats the parts of the output.
type palette struct {
	result func(string, ...any) string
	err    func(string, ...any) string
	note   func(string, ...any) string
}

func newPalette(on bool) *palette {
	if !on {
		return &palette{result: fmt.Sprintf, err: fmt.Sprintf, note: fmt.Sprintf}
	}
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		// color disables itself when stdout is not a terminal, but the
		// settings have already decided.
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &palette{
		result: mk(color.FgCyan, color.Bold),
		err:    mk(color.FgRed),
		note:   mk(color.FgHiBlack),
	}
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type ReplConfig struct {
	*MainConfig

	Repl *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type RpnConfig struct {
	*MainConfig

	Rpn *cli.Command
}
