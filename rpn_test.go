package calc_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/calc"
)

func TestPostfix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"7", "7"},
		{"x", "x"},
		{"2+3*4", "2 3 4 * +"},
		{"(2+3)*4", "2 3 + 4 *"},
		{"2^3^2", "2 3 2 ^ ^"},
		{"8-3-2", "8 3 - 2 -"},
		{"-x", "0 x -"},
		{"3+4*2/(1-5)^2^3", "3 4 2 * 1 5 - 2 3 ^ ^ / +"},
	}
	for _, c := range cases {
		n, err := calc.ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if diff := cmp.Diff(strings.Fields(c.want), calc.Postfix(n)); diff != "" {
			t.Errorf("%q: wrong postfix (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		toks string
		want float64
	}{
		{"1 1 + 7 / 15 -", -14.714285714285714},
		{"2 3 4 * +", 14},
		{"5 1 2 + 4 * + 3 -", 14},
		{"2 3 ^", 8},
		{"1 4 /", 0.25},
		{"42", 42},
	}
	for _, c := range cases {
		r, err := calc.EvalPostfix(strings.Fields(c.toks))
		if err != nil {
			t.Errorf("%q failed: %v", c.toks, err)
			continue
		}
		if r != c.want {
			t.Errorf("%q: want %g, got %g", c.toks, c.want, r)
		}
	}
	r, err := calc.EvalPostfix([]string{"1", "0", "/"})
	if err != nil || !math.IsInf(r, 1) {
		t.Errorf("1/0 gave %g, %v", r, err)
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	cases := []struct {
		toks string
		kind calc.SyntaxErrorKind
	}{
		{"", calc.LeftoverValues},
		{"1 2", calc.LeftoverValues},
		{"+", calc.NotEnoughOperands},
		{"1 +", calc.NotEnoughOperands},
		{"1 2 %", calc.InvalidNumber},
		{"1.2.3", calc.InvalidNumber},
	}
	for _, c := range cases {
		_, err := calc.EvalPostfix(strings.Fields(c.toks))
		var se *calc.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: want SyntaxError, got %#v", c.toks, err)
			continue
		}
		if se.Kind != c.kind {
			t.Errorf("%q: want kind %d, got %d", c.toks, c.kind, se.Kind)
		}
	}
	_, err := calc.EvalPostfix([]string{"1", "x", "+"})
	var ee *calc.EvaluationError
	if !errors.As(err, &ee) || ee.Name != "x" {
		t.Errorf("want unresolved x, got %v", err)
	}
}

func TestPostfixAgrees(t *testing.T) {
	cases := []string{
		"1+2*3",
		"(1+2)*3",
		"2^3^2",
		"-(1+2*3)",
		"--5",
		"3 + 4 * 2 ÷ ( 1 - 5 ) ^ 2 ^ 3",
		"0.1+0.2",
		"7/3-1",
	}
	for _, src := range cases {
		n, err := calc.ParseString(src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", src, err)
		}
		want, _ := calc.Evaluate(n)
		got, err := calc.EvalPostfix(calc.Postfix(n))
		if err != nil {
			t.Errorf("%q: postfix failed: %v", src, err)
			continue
		}
		if got != want {
			t.Errorf("%q: tree gives %g, postfix gives %g", src, want, got)
		}
	}
}
