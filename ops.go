package calc

import (
	"math"
	"strconv"
)

// Operation is the arithmetic performed by a binary expression.
type Operation int8

const (
	opNone Operation = iota
	Add
	Subtract
	Multiply
	Divide
	Power
)

func (op Operation) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Power:
		return "Power"
	default:
		return "Operation(" + strconv.Itoa(int(op)) + ")"
	}
}

// Symbol returns the operator symbol that produces op.
func (op Operation) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "^"
	default:
		return "?"
	}
}

// Apply computes l op r with float64 semantics. Division by zero gives an
// infinity or NaN, never an error.
func (op Operation) Apply(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Subtract:
		return l - r
	case Multiply:
		return l * r
	case Divide:
		return l / r
	case Power:
		return math.Pow(l, r)
	default:
		panic("calc: apply invalid operation " + op.String())
	}
}

// Associativity determines how operators of equal precedence group.
type Associativity int8

const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "Right"
	}
	return "Left"
}

// OperatorInfo describes one operator.
type OperatorInfo struct {
	// Precedence is the binding strength. Higher is more binding.
	Precedence int8
	// Assoc is the associativity.
	Assoc Associativity
	// Op is the operation a binary expression built from the operator
	// performs.
	Op Operation
}

// Binds reports whether an operator p already on the operator stack must be
// reduced before the incoming operator than is pushed.
func (p OperatorInfo) Binds(than OperatorInfo) bool {
	if p.Precedence != than.Precedence {
		return p.Precedence > than.Precedence
	}
	return than.Assoc == Left
}

// LookupOperator gets the operator info for a symbol. The second result is
// false if the symbol is not an operator.
func LookupOperator(symbol string) (OperatorInfo, bool) {
	switch symbol {
	case "^":
		return OperatorInfo{4, Right, Power}, true
	case "*":
		return OperatorInfo{3, Left, Multiply}, true
	case "/":
		return OperatorInfo{3, Left, Divide}, true
	case "+":
		return OperatorInfo{2, Left, Add}, true
	case "-":
		return OperatorInfo{2, Left, Subtract}, true
	default:
		return OperatorInfo{}, false
	}
}

// Operators contains the runes which are operators.
const Operators = "+-*/^"
