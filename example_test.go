package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvaluateExpression() {
	for _, src := range []string{"2+3*4", "(2+3)*4", "2^3^2", "-(1+2*3)", "1/0"} {
		r, err := calc.EvaluateExpression(src)
		fmt.Println(src, "=", r, err)
	}
	// Output:
	// 2+3*4 = 14 <nil>
	// (2+3)*4 = 20 <nil>
	// 2^3^2 = 512 <nil>
	// -(1+2*3) = -7 <nil>
	// 1/0 = +Inf <nil>
}

func ExampleParseString() {
	n, _ := calc.ParseString("3 + 4 * 2 ÷ (1 - 5)")
	fmt.Println(n)
	fmt.Println(calc.Postfix(n))
	// Output:
	// ([3] + [([4] * [2]) / ([1] - [5])])
	// [3 4 2 * 1 5 - / +]
}

func ExampleTokenize() {
	toks, _ := calc.Tokenize("4*-x")
	fmt.Println(calc.Texts(toks))
	// Output:
	// [4 * ( 0 - x )]
}

func ExampleRegistry() {
	reg := calc.NewRegistry()
	if err := calc.DefineFunction("fn hyp(a,b){(a^2+b^2)^0.5}", reg); err != nil {
		panic(err)
	}
	r, err := calc.CallFunction("hyp(3,4)", reg)
	fmt.Println(r, err)
	_, err = calc.CallFunction("hyp(3)", reg)
	fmt.Println(err)
	// Output:
	// 5 <nil>
	// cannot call hyp with 1 arguments (want 2)
}
