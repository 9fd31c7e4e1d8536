package calc

import "strconv"

// TokenizationError is an error indicating a character that cannot appear in
// an expression. It implements InputError.
type TokenizationError struct {
	// Char is the unsupported character.
	Char rune
	// Col is the column of the character.
	Col int
}

func (err *TokenizationError) Error() string {
	return errpos(err.Col, "unsupported character "+strconv.QuoteRune(err.Char))
}

func (err *TokenizationError) Pos() int {
	return err.Col
}

// SyntaxErrorKind classifies a SyntaxError.
type SyntaxErrorKind int8

const (
	// MismatchedParens is an open parenthesis without a close or the reverse.
	MismatchedParens SyntaxErrorKind = iota + 1
	// NotEnoughOperands is an operator with fewer than two operands
	// available.
	NotEnoughOperands
	// LeftoverValues is an expression that does not reduce to exactly one
	// value.
	LeftoverValues
	// InvalidNumber is a numeral that does not parse as a float.
	InvalidNumber
	// UnexpectedToken is a token of a kind Parse does not know.
	UnexpectedToken
)

// SyntaxError is an error indicating a malformed token sequence. It
// implements InputError.
type SyntaxError struct {
	Kind SyntaxErrorKind
	// Col is the column of the token at which the error was detected, or 0
	// if it was detected at the end of input.
	Col int
	// Count is the number of values remaining for LeftoverValues.
	Count int
	// Text is the offending token for InvalidNumber and UnexpectedToken and
	// the operator for NotEnoughOperands.
	Text string
}

func (err *SyntaxError) Error() string {
	var msg string
	switch err.Kind {
	case MismatchedParens:
		msg = "mismatched parentheses"
	case NotEnoughOperands:
		msg = "not enough operands"
		if err.Text != "" {
			msg += " for " + strconv.Quote(err.Text)
		}
	case LeftoverValues:
		msg = "invalid expression: " + strconv.Itoa(err.Count) + " values remain"
	case InvalidNumber:
		msg = "invalid number " + strconv.Quote(err.Text)
	case UnexpectedToken:
		msg = "unexpected token " + strconv.Quote(err.Text)
	default:
		msg = "syntax error"
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not in the
// operator table. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EvaluationError is an error from evaluating a tree that still contains a
// placeholder.
type EvaluationError struct {
	// Name is the unresolved placeholder.
	Name string
}

func (err *EvaluationError) Error() string {
	return "unresolved placeholder " + strconv.Quote(err.Name)
}

// DefinitionErrorKind classifies a DefinitionError.
type DefinitionErrorKind int8

const (
	MissingKeyword DefinitionErrorKind = iota + 1
	MissingOpenParen
	MissingCloseParen
	MissingOpenBrace
	MissingCloseBrace
	InvalidName
	InvalidParameter
	DuplicateParameter
	UnknownParameter
)

// DefinitionError is an error indicating a malformed function definition.
type DefinitionError struct {
	Kind DefinitionErrorKind
	// Text is the offending name or parameter, if any.
	Text string
}

func (err *DefinitionError) Error() string {
	switch err.Kind {
	case MissingKeyword:
		return "function definition must start with fn"
	case MissingOpenParen:
		return "function definition has no ( after the name"
	case MissingCloseParen:
		return "function definition has no ) after the parameters"
	case MissingOpenBrace:
		return "function definition has no { before the body"
	case MissingCloseBrace:
		return "function definition has no } after the body"
	case InvalidName:
		return "invalid function name " + strconv.Quote(err.Text)
	case InvalidParameter:
		return "invalid parameter name " + strconv.Quote(err.Text)
	case DuplicateParameter:
		return "duplicate parameter " + strconv.Quote(err.Text)
	case UnknownParameter:
		return "body uses " + strconv.Quote(err.Text) + " which is not a parameter"
	default:
		return "invalid function definition"
	}
}

// CallErrorKind classifies a CallError.
type CallErrorKind int8

const (
	UndefinedFunction CallErrorKind = iota + 1
	ArityMismatch
	MissingArgument
	ArgumentParseError
	MalformedCall
)

// CallError is an error from calling a defined function.
type CallError struct {
	Kind CallErrorKind
	// Func is the function name that was called.
	Func string
	// Want and Got are the parameter and argument counts for ArityMismatch.
	Want, Got int
	// Arg is the parameter name for MissingArgument and ArgumentParseError.
	Arg string
	// Text is the argument text for ArgumentParseError and the call text for
	// MalformedCall.
	Text string
}

func (err *CallError) Error() string {
	switch err.Kind {
	case UndefinedFunction:
		return "undefined function " + strconv.Quote(err.Func)
	case ArityMismatch:
		return "cannot call " + err.Func + " with " + strconv.Itoa(err.Got) + " arguments (want " + strconv.Itoa(err.Want) + ")"
	case MissingArgument:
		return "call to " + err.Func + " has no argument for " + strconv.Quote(err.Arg)
	case ArgumentParseError:
		return "argument " + err.Arg + " of " + err.Func + " is not a number: " + strconv.Quote(err.Text)
	case MalformedCall:
		return "malformed call " + strconv.Quote(err.Text)
	default:
		return "invalid call to " + strconv.Quote(err.Func)
	}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based column of the character or token that caused
	// the error, or 0 if the error was detected at the end of the input.
	Pos() int
}

var (
	_ InputError = (*TokenizationError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*OperatorError)(nil)
)
