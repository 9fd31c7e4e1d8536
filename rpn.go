package calc

import "github.com/edwingeng/deque"

// EvalPostfix evaluates tokens in reverse Polish order, as produced by
// Postfix, using a stack of values. Names that are not numbers fail with an
// *EvaluationError.
func EvalPostfix(toks []string) (float64, error) {
	stack := deque.NewDeque()
	for _, tok := range toks {
		if info, ok := LookupOperator(tok); ok {
			if stack.Len() < 2 {
				return 0, &SyntaxError{Kind: NotEnoughOperands, Text: tok}
			}
			r := stack.PopBack().(float64)
			l := stack.PopBack().(float64)
			stack.PushBack(info.Op.Apply(l, r))
			continue
		}
		v, err := parseNum(tok)
		if err != nil {
			if isName(tok) {
				return 0, &EvaluationError{Name: tok}
			}
			return 0, &SyntaxError{Kind: InvalidNumber, Text: tok}
		}
		stack.PushBack(v)
	}
	if stack.Len() != 1 {
		return 0, &SyntaxError{Kind: LeftoverValues, Count: stack.Len()}
	}
	return stack.PopBack().(float64), nil
}
