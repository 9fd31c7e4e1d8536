package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParseSettings(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want Settings
	}{
		{"empty", "", defaultSettings()},
		{"all", "prompt: 'calc> '\nformat: '%.4f'\nprecision: 128\ncolor: never\n", Settings{Prompt: "calc> ", Format: "%.4f", Precision: 128, Color: "never"}},
		{"some", "precision: 64\n", Settings{Prompt: "> ", Format: "%g", Precision: 64, Color: "auto"}},
		{"max", "precision: 65536\n", Settings{Prompt: "> ", Format: "%g", Precision: 65536, Color: "auto"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := defaultSettings()
			if err := parseSettings([]byte(c.doc), &s); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, s); diff != "" {
				t.Errorf("wrong settings (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSettingsErrors(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		usage bool
	}{
		{"unknown-key", "colour: auto\n", false},
		{"bad-type", "precision: lots\n", false},
		{"negative", "precision: -1\n", true},
		{"too-precise", "precision: 65537\n", true},
		{"huge", "precision: 4000000000\n", true},
		{"bad-color", "color: sometimes\n", true},
		{"no-verb", "format: plain\n", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := defaultSettings()
			err := parseSettings([]byte(c.doc), &s)
			if err == nil {
				t.Fatalf("no error for %q", c.doc)
			}
			if got := errors.Is(err, cli.ErrUsage); got != c.usage {
				t.Errorf("usage error: want %t, got %t (%v)", c.usage, got, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte("prompt: '>> '\nprecision: 96\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CALC_CONFIG", path)
	cfg := &MainConfig{}
	if err := cfg.resolve(); err != nil {
		t.Fatal(err)
	}
	want := Settings{Prompt: ">> ", Format: "%g", Precision: 96, Color: "auto"}
	if diff := cmp.Diff(want, cfg.settings); diff != "" {
		t.Errorf("wrong settings (-want +got):\n%s", diff)
	}
	if ctx := cfg.settings.context(); ctx.Prec() != 96 {
		t.Errorf("context has precision %d", ctx.Prec())
	}
}

func TestResolveMissing(t *testing.T) {
	t.Setenv("CALC_CONFIG", "")
	cfg := &MainConfig{Config: filepath.Join(t.TempDir(), "nope.yaml")}
	if err := cfg.resolve(); err == nil {
		t.Error("missing settings file was not an error")
	}
	cfg = &MainConfig{}
	if err := cfg.resolve(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultSettings(), cfg.settings); diff != "" {
		t.Errorf("no file gave non-default settings:\n%s", diff)
	}
}

func TestColorize(t *testing.T) {
	var b strings.Builder
	cases := []struct {
		color string
		want  bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
	}
	for _, c := range cases {
		s := Settings{Color: c.color}
		if got := s.colorize(&b); got != c.want {
			t.Errorf("%s: want %t, got %t", c.color, c.want, got)
		}
	}
}

func TestPalette(t *testing.T) {
	off := newPalette(false)
	if got := off.result("%g", 1.5); got != "1.5" {
		t.Errorf("plain palette gave %q", got)
	}
	on := newPalette(true)
	got := on.err("error: %s", "x")
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "error: x") {
		t.Errorf("colored palette gave %q", got)
	}
}
