package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"nonsense", false},
	}
	for _, c := range cases {
		t.Setenv("CALC_DEBUG_TEST", c.val)
		if got := boolEnv("CALC_DEBUG_TEST"); got != c.want {
			t.Errorf("boolEnv with %q: want %t, got %t", c.val, c.want, got)
		}
	}
}
