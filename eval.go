package calc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calc/internal/debug"
)

// Evaluate computes the value of a tree with float64 arithmetic. The left
// operand of each expression is evaluated before the right, and the first
// error stops evaluation. A tree containing a placeholder fails with an
// *EvaluationError.
func Evaluate(n Node) (float64, error) {
	switch n := n.(type) {
	case *Operand:
		return n.Value, nil
	case *Placeholder:
		return 0, &EvaluationError{Name: n.Name}
	case *BinaryExpr:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return n.Op.Apply(l, r), nil
	default:
		panic("calc: evaluate invalid node")
	}
}

// EvaluateExpression tokenizes, parses, and evaluates a plain expression.
func EvaluateExpression(text string) (float64, error) {
	n, err := ParseString(text)
	if err != nil {
		return 0, err
	}
	return Evaluate(n)
}

// Context is a context for evaluating trees, possibly with extended
// precision. It is not safe to use a Context concurrently.
type Context struct {
	prec uint
	nums map[string]*big.Float
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the number of mantissa bits used for intermediate results. Zero
// means plain float64 evaluation.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// context evaluates with float64 arithmetic, exactly as Evaluate does.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float)}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision of intermediate results, or 0 for float64.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// errInexpressible marks an intermediate result with no big.Float
// representation, such as 0/0.
var errInexpressible = errors.New("no extended-precision result")

// Eval evaluates a tree. With extended precision, numerals are parsed from
// their source text and every operation is carried out at the context's
// precision; the result is rounded to float64 once at the end. If any
// intermediate result would be NaN, or a numeral is outside the range of
// float64, the tree is instead evaluated with float64 arithmetic. Errors are
// always those Evaluate could produce, but values may differ where a float64
// intermediate would overflow or underflow, e.g. 2^1100/2^1090 is about 1024 here
// and NaN from Evaluate.
func (ctx *Context) Eval(n Node) (float64, error) {
	if ctx.prec == 0 {
		return Evaluate(n)
	}
	r, err := ctx.eval(n)
	if err != nil {
		if errors.Is(err, errInexpressible) {
			if debug.Eval() {
				debug.Logf("falling back to float64 for %v\n", n)
			}
			return Evaluate(n)
		}
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

func (ctx *Context) eval(n Node) (*big.Float, error) {
	switch n := n.(type) {
	case *Operand:
		return ctx.num(n)
	case *Placeholder:
		return nil, &EvaluationError{Name: n.Name}
	case *BinaryExpr:
		l, err := ctx.eval(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := ctx.eval(n.Right)
		if err != nil {
			return nil, err
		}
		return ctx.apply(n.Op, l, r)
	default:
		panic("calc: evaluate invalid node")
	}
}

// num gets a possibly cached number for an operand.
func (ctx *Context) num(n *Operand) (*big.Float, error) {
	if n.Text == "" {
		if math.IsNaN(n.Value) {
			return nil, errInexpressible
		}
		return new(big.Float).SetPrec(ctx.prec).SetFloat64(n.Value), nil
	}
	if r := ctx.nums[n.Text]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(n.Text, 10)
	if err != nil {
		// E.g. "nan" from a call argument.
		return nil, errInexpressible
	}
	if math.IsInf(n.Value, 0) || (n.Value == 0 && r.Sign() != 0) {
		// The numeral overflows or underflows float64.
		return nil, errInexpressible
	}
	ctx.nums[n.Text] = r
	return r, nil
}

// apply computes l op r into a new value. The operands are not modified, so
// cached numbers stay intact.
func (ctx *Context) apply(op Operation, l, r *big.Float) (z *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		z, err = nil, errInexpressible
	}()
	z = new(big.Float).SetPrec(ctx.prec)
	switch op {
	case Add:
		z.Add(l, r)
	case Subtract:
		z.Sub(l, r)
	case Multiply:
		z.Mul(l, r)
	case Divide:
		z.Quo(l, r)
	case Power:
		// bigfloat.Pow is defined only for positive finite bases.
		if l.Sign() <= 0 || l.IsInf() || r.IsInf() {
			return nil, errInexpressible
		}
		// Pow may return a value other than z, at its own precision.
		p := bigfloat.Pow(z, l, r)
		z = new(big.Float).SetPrec(ctx.prec).Set(p)
	default:
		panic("calc: apply invalid operation " + op.String())
	}
	return z, nil
}
