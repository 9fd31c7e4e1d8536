package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func plain() *Settings {
	s := defaultSettings()
	s.Color = "never"
	return &s
}

func runSession(t *testing.T, s *Settings, input string) []string {
	t.Helper()
	var b strings.Builder
	if err := basicLoop(newSession(s, &b), strings.NewReader(input), &b); err != nil {
		t.Fatalf("loop failed: %v", err)
	}
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func TestRepl(t *testing.T) {
	input := `fn foo(a,b){a+b}
foo(1,2)
fn foo(a,b){a*b}
foo(1, 2)
2+3*4

1/0
-(1+2*3)
bar(1)
foo(1)
foo(1,x)
2+
fn foo(a){b}
:funcs
:tree 2^3^2
:rpn 2+3*4
:nope
:quit
5
`
	want := []string{
		"defined foo",
		"3",
		"defined foo",
		"2",
		"14",
		"+Inf",
		"-7",
		`error: undefined function "bar"`,
		"error: cannot call foo with 1 arguments (want 2)",
		`error: argument b of foo is not a number: "x"`,
		`error: 2: not enough operands for "+"`,
		`error: body uses "b" which is not a parameter`,
		"fn foo(a,b){([a] * [b])}",
		"([2] ^ [(3) ^ (2)])",
		"2 3 4 * + = 14",
		`error: unknown command ":nope"`,
	}
	if diff := cmp.Diff(want, runSession(t, plain(), input)); diff != "" {
		t.Errorf("wrong output (-want +got):\n%s", diff)
	}
}

func TestReplSessionsIndependent(t *testing.T) {
	runSession(t, plain(), "fn foo(){1}\n")
	got := runSession(t, plain(), "foo()\n")
	want := []string{`error: undefined function "foo"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("function leaked between sessions (-want +got):\n%s", diff)
	}
}

func TestReplPrecision(t *testing.T) {
	cases := []struct {
		prec int
		want string
	}{
		{0, "0.30000000000000004"},
		{256, "0.3"},
	}
	for _, c := range cases {
		s := plain()
		s.Precision = c.prec
		got := runSession(t, s, "0.1+0.2\nfn add(a,b){a+b}\nadd(0.1,0.2)\n5^1\n2^0\nfn pow(a,b){a^b}\npow(7,1)\n2^1100\n2^(0-2000)\n")
		want := []string{c.want, "defined add", c.want, "5", "1", "defined pow", "7", "+Inf", "0"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("precision %d (-want +got):\n%s", c.prec, diff)
		}
	}
}

func TestReplFormat(t *testing.T) {
	s := plain()
	s.Format = "%.3f"
	got := runSession(t, s, "1/3\n:rpn 2/3\n")
	want := []string{"0.333", "2 3 / = 0.667"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong output (-want +got):\n%s", diff)
	}
}
