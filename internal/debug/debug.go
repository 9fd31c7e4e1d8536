// Package debug gates diagnostic logging on environment variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens   bool
	Parse    bool
	Eval     bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("CALC_DEBUG_TOKENS")
	d.Parse = boolEnv("CALC_DEBUG_PARSE")
	d.Eval = boolEnv("CALC_DEBUG_EVAL")
	d.Registry = boolEnv("CALC_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Registry() bool {
	return d.Registry
}

// Logf writes a diagnostic line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "calc: "+format, args...)
}
