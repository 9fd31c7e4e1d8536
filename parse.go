package calc

import (
	"github.com/edwingeng/deque"

	"github.com/zephyrtronium/calc/internal/debug"
)

// pending is an entry on the operator stack: an operator with its info, or
// an open parenthesis marker.
type pending struct {
	tok  Token
	info OperatorInfo
}

func (p pending) open() bool {
	return p.tok.Kind == TokenOpen
}

// parser holds the two stacks of the shunting-yard algorithm. Rather than
// emitting postfix tokens, reducing an operator combines the top two output
// nodes into a BinaryExpr, so the output stack ends holding the whole tree.
type parser struct {
	// out holds Node values.
	out deque.Deque
	// ops holds pending values.
	ops deque.Deque
}

// Parse builds a tree from a normalized token sequence, as produced by
// Tokenize. Identifiers become placeholders.
func Parse(toks []Token) (Node, error) {
	p := parser{out: deque.NewDeque(), ops: deque.NewDeque()}
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			v, err := parseNum(tok.Text)
			if err != nil {
				return nil, &SyntaxError{Kind: InvalidNumber, Col: tok.Pos, Text: tok.Text}
			}
			p.out.PushBack(&Operand{Value: v, Text: tok.Text})
		case TokenIdent:
			p.out.PushBack(&Placeholder{Name: tok.Text})
		case TokenOp:
			o1, ok := LookupOperator(tok.Text)
			if !ok {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			for p.ops.Len() > 0 {
				top := p.ops.Back().(pending)
				if top.open() || !top.info.Binds(o1) {
					break
				}
				p.ops.PopBack()
				if err := p.reduce(top); err != nil {
					return nil, err
				}
			}
			p.ops.PushBack(pending{tok: tok, info: o1})
		case TokenOpen:
			p.ops.PushBack(pending{tok: tok})
		case TokenClose:
			if err := p.unwind(tok); err != nil {
				return nil, err
			}
		default:
			return nil, &SyntaxError{Kind: UnexpectedToken, Col: tok.Pos, Text: tok.Text}
		}
	}
	for p.ops.Len() > 0 {
		top := p.ops.PopBack().(pending)
		if top.open() {
			return nil, &SyntaxError{Kind: MismatchedParens, Col: top.tok.Pos}
		}
		if err := p.reduce(top); err != nil {
			return nil, err
		}
	}
	if p.out.Len() != 1 {
		return nil, &SyntaxError{Kind: LeftoverValues, Count: p.out.Len()}
	}
	n := p.out.PopBack().(Node)
	if debug.Parse() {
		debug.Logf("parsed %v\n", n)
	}
	return n, nil
}

// ParseString tokenizes and parses an expression.
func ParseString(src string) (Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// reduce combines the top two output nodes with an operator. The right
// operand is on top since it was pushed last.
func (p *parser) reduce(op pending) error {
	if p.out.Len() < 2 {
		return &SyntaxError{Kind: NotEnoughOperands, Col: op.tok.Pos, Text: op.tok.Text}
	}
	right := p.out.PopBack().(Node)
	left := p.out.PopBack().(Node)
	p.out.PushBack(&BinaryExpr{Op: op.info.Op, Left: left, Right: right})
	return nil
}

// unwind reduces operators up to the open parenthesis matching a close,
// then discards the open parenthesis.
func (p *parser) unwind(tok Token) error {
	for {
		if p.ops.Len() == 0 {
			return &SyntaxError{Kind: MismatchedParens, Col: tok.Pos}
		}
		top := p.ops.PopBack().(pending)
		if top.open() {
			return nil
		}
		if err := p.reduce(top); err != nil {
			return err
		}
	}
}
