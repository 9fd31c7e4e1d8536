package calc

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. The concrete
// types are *Operand, *Placeholder, and *BinaryExpr. Every node exclusively
// owns its children.
type Node interface {
	// String formats the tree with every subexpression bracketed,
	// alternating round and square brackets by depth.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Operand is a leaf holding a number.
type Operand struct {
	Value float64
	// Text is the numeral as written in the source, or empty if the value
	// was computed or substituted from something other than a numeral.
	Text string
}

// Placeholder is a leaf naming an unbound function parameter.
type Placeholder struct {
	Name string
}

// BinaryExpr applies an operation to two subtrees.
type BinaryExpr struct {
	Op    Operation
	Left  Node
	Right Node
}

func (n *Operand) String() string     { return format(n) }
func (n *Placeholder) String() string { return format(n) }
func (n *BinaryExpr) String() string  { return format(n) }

func format(n Node) string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *Operand) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.literal())
	b.WriteByte(r)
}

// literal is the text used to display or re-parse the operand.
func (n *Operand) literal() string {
	if n.Text != "" {
		return n.Text
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Placeholder) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Name)
	b.WriteByte(r)
}

func (n *BinaryExpr) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Op.Symbol())
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
	b.WriteByte(r)
}

// Placeholders returns the sorted names of the placeholders in a tree.
func Placeholders(n Node) []string {
	seen := make(map[string]bool)
	walk(n, func(n Node) {
		if p, ok := n.(*Placeholder); ok {
			seen[p.Name] = true
		}
	})
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// walk calls f on every node of a tree in postorder.
func walk(n Node, f func(Node)) {
	if b, ok := n.(*BinaryExpr); ok {
		walk(b.Left, f)
		walk(b.Right, f)
	}
	f(n)
}

// Postfix returns the tokens of a tree in reverse Polish order.
func Postfix(n Node) []string {
	var r []string
	walk(n, func(n Node) {
		switch n := n.(type) {
		case *Operand:
			r = append(r, n.literal())
		case *Placeholder:
			r = append(r, n.Name)
		case *BinaryExpr:
			r = append(r, n.Op.Symbol())
		}
	})
	return r
}

// Substitute copies a tree, replacing each placeholder with the number parsed
// from args[name]. The result contains no placeholders. Errors are
// *CallError with kind MissingArgument or ArgumentParseError.
func Substitute(n Node, args map[string]string) (Node, error) {
	return substitute(n, "", args)
}

func substitute(n Node, fn string, args map[string]string) (Node, error) {
	switch n := n.(type) {
	case *Operand:
		return &Operand{Value: n.Value, Text: n.Text}, nil
	case *Placeholder:
		text, ok := args[n.Name]
		if !ok {
			return nil, &CallError{Kind: MissingArgument, Func: fn, Arg: n.Name}
		}
		v, err := parseNum(text)
		if err != nil {
			return nil, &CallError{Kind: ArgumentParseError, Func: fn, Arg: n.Name, Text: text}
		}
		return &Operand{Value: v, Text: strings.TrimSpace(text)}, nil
	case *BinaryExpr:
		l, err := substitute(n.Left, fn, args)
		if err != nil {
			return nil, err
		}
		r, err := substitute(n.Right, fn, args)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: n.Op, Left: l, Right: r}, nil
	default:
		panic("calc: substitute on invalid node")
	}
}

// parseNum parses a decimal number. Values too large for float64 become
// infinities.
func parseNum(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}
