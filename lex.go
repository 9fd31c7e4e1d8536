package calc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/zephyrtronium/calc/internal/debug"
)

// Token is one unit of a normalized expression.
type Token struct {
	// Text is the token's source text. Implicit tokens inserted during
	// normalization have the text they would have had if written out.
	Text string
	// Kind is the token's type.
	Kind TokenKind
	// Pos is the 1-based column of the token in the raw input. Implicit
	// tokens use the column of the sign that produced them.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a decimal numeral.
	TokenNum
	// TokenIdent is a parameter or function name.
	TokenIdent
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenIdent:
		return "Ident"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DivisionSign is accepted in place of /.
const DivisionSign = '÷'

// Texts returns the text of each token.
func Texts(toks []Token) []string {
	r := make([]string, len(toks))
	for i, tok := range toks {
		r[i] = tok.Text
	}
	return r
}

type tokenizer struct {
	toks []Token
	// buf accumulates a numeral or identifier of kind acc starting at
	// column start.
	buf   strings.Builder
	acc   TokenKind
	start int
	// depth is the number of open parentheses emitted minus closes.
	depth int
	// closes holds the depths at which implicit groups opened for unary
	// signs must be closed.
	closes []int
}

// Tokenize splits src into tokens, ignoring whitespace. Every + or - in the
// result is binary: a unary sign s followed by an operand x is rewritten to
// ( 0 s x ), where x is the following numeral, identifier, or parenthesized
// group.
func Tokenize(src string) ([]Token, error) {
	var z tokenizer
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		if r == DivisionSign {
			r = '/'
		}
		switch {
		case '0' <= r && r <= '9', r == '.':
			z.accumulate(TokenNum, r, col)
		case 'a' <= r && r <= 'z':
			z.accumulate(TokenIdent, r, col)
		case strings.ContainsRune(Operators, r):
			z.flush()
			if (r == '+' || r == '-') && z.unary() {
				z.open(col)
				z.emit("0", TokenNum, col)
				z.emit(string(r), TokenOp, col)
				z.closes = append(z.closes, z.depth)
				continue
			}
			z.emit(string(r), TokenOp, col)
		case r == '(':
			z.flush()
			z.open(col)
		case r == ')':
			z.flush()
			z.close(col)
			z.settle(col)
		default:
			return nil, &TokenizationError{Char: r, Col: col}
		}
	}
	z.flush()
	// Close groups whose operand never arrived so that the parser sees the
	// same parenthesis balance the user wrote.
	for i := len(z.closes) - 1; i >= 0; i-- {
		z.emit(")", TokenClose, col+1)
	}
	if debug.Tokens() {
		debug.Logf("tokens %q -> %q\n", src, Texts(z.toks))
	}
	return z.toks, nil
}

func (z *tokenizer) emit(text string, kind TokenKind, col int) {
	z.toks = append(z.toks, Token{Text: text, Kind: kind, Pos: col})
}

func (z *tokenizer) open(col int) {
	z.emit("(", TokenOpen, col)
	z.depth++
}

func (z *tokenizer) close(col int) {
	z.emit(")", TokenClose, col)
	z.depth--
}

// accumulate adds r to the numeral or identifier being scanned.
func (z *tokenizer) accumulate(kind TokenKind, r rune, col int) {
	if z.buf.Len() > 0 && z.acc != kind {
		z.flush()
	}
	if z.buf.Len() == 0 {
		z.acc = kind
		z.start = col
	}
	z.buf.WriteRune(r)
}

// flush emits the accumulated numeral or identifier, if any.
func (z *tokenizer) flush() {
	if z.buf.Len() == 0 {
		return
	}
	z.emit(z.buf.String(), z.acc, z.start)
	z.buf.Reset()
	z.settle(z.start)
}

// settle emits the implicit closes owed at the current depth after an
// operand has been completed.
func (z *tokenizer) settle(col int) {
	for len(z.closes) > 0 && z.closes[len(z.closes)-1] == z.depth {
		z.closes = z.closes[:len(z.closes)-1]
		z.close(col)
	}
}

// unary reports whether a sign at the current position is unary.
func (z *tokenizer) unary() bool {
	if len(z.toks) == 0 {
		return true
	}
	switch z.toks[len(z.toks)-1].Kind {
	case TokenOp, TokenOpen:
		return true
	default:
		return false
	}
}
