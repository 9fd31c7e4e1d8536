package calc

import (
	"sort"
	"strings"

	"github.com/zephyrtronium/calc/internal/debug"
)

// FunctionDefinition is a named template: a tree whose placeholders are
// bound positionally to Params when the function is called. A definition is
// never modified after it is created.
type FunctionDefinition struct {
	Name   string
	Params []string
	// Template is the parsed body. Every placeholder in it names one of
	// Params.
	Template Node
}

// String formats the definition with its body fully bracketed.
func (def *FunctionDefinition) String() string {
	return "fn " + def.Name + "(" + strings.Join(def.Params, ",") + "){" + def.Template.String() + "}"
}

// Registry maps function names to definitions for one session. It is not
// safe to use a Registry concurrently.
type Registry struct {
	defs map[string]*FunctionDefinition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*FunctionDefinition)}
}

// Define parses a definition of the form fn name(p1,...,pN){body} and stores
// it, replacing any previous definition with the same name. Errors in the
// body are the same as from ParseString.
func (reg *Registry) Define(text string) (*FunctionDefinition, error) {
	def, err := parseDefinition(text)
	if err != nil {
		return nil, err
	}
	if debug.Registry() {
		if _, ok := reg.defs[def.Name]; ok {
			debug.Logf("redefining %s\n", def.Name)
		}
		debug.Logf("defined %v\n", def)
	}
	reg.defs[def.Name] = def
	return def, nil
}

// Lookup gets the definition of a function.
func (reg *Registry) Lookup(name string) (*FunctionDefinition, bool) {
	def, ok := reg.defs[name]
	return def, ok
}

// Names returns the names of all defined functions in sorted order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.defs))
	for k := range reg.defs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined functions.
func (reg *Registry) Len() int {
	return len(reg.defs)
}

// Instantiate binds args positionally to the parameters of a function and
// returns a copy of its template with every placeholder replaced by the
// corresponding argument's value.
func (reg *Registry) Instantiate(name string, args []string) (Node, error) {
	def, ok := reg.defs[name]
	if !ok {
		return nil, &CallError{Kind: UndefinedFunction, Func: name}
	}
	if len(args) != len(def.Params) {
		return nil, &CallError{Kind: ArityMismatch, Func: name, Want: len(def.Params), Got: len(args)}
	}
	m := make(map[string]string, len(args))
	for i, p := range def.Params {
		m[p] = args[i]
	}
	return substitute(def.Template, name, m)
}

// Call instantiates a function and evaluates the result.
func (reg *Registry) Call(name string, args []string) (float64, error) {
	n, err := reg.Instantiate(name, args)
	if err != nil {
		return 0, err
	}
	return Evaluate(n)
}

// DefineFunction parses and stores a function definition.
func DefineFunction(text string, reg *Registry) error {
	_, err := reg.Define(text)
	return err
}

// CallFunction parses a call of the form name(a1,...,aN) and evaluates it
// against the functions in reg.
func CallFunction(text string, reg *Registry) (float64, error) {
	name, args, err := ParseCall(text)
	if err != nil {
		return 0, err
	}
	return reg.Call(name, args)
}

// ParseCall splits a call of the form name(a1,...,aN) into the function name
// and the argument texts. Arguments are trimmed of surrounding space. An
// empty argument list yields no arguments.
func ParseCall(text string) (string, []string, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return "", nil, &CallError{Kind: MalformedCall, Text: text}
	}
	name := strings.TrimSpace(text[:open])
	if !isName(name) {
		return "", nil, &CallError{Kind: MalformedCall, Func: name, Text: text}
	}
	inner := strings.TrimSpace(text[open+1 : len(text)-1])
	if inner == "" {
		return name, nil, nil
	}
	args := strings.Split(inner, ",")
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return name, args, nil
}

// parseDefinition extracts the parts of a definition and parses its body.
func parseDefinition(text string) (*FunctionDefinition, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "fn") {
		return nil, &DefinitionError{Kind: MissingKeyword}
	}
	rest := text[len("fn"):]
	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return nil, &DefinitionError{Kind: MissingOpenParen}
	}
	name := strings.TrimSpace(rest[:open])
	if !isName(name) {
		return nil, &DefinitionError{Kind: InvalidName, Text: name}
	}
	rest = rest[open+1:]
	rp := strings.IndexByte(rest, ')')
	if rp < 0 {
		return nil, &DefinitionError{Kind: MissingCloseParen}
	}
	params, err := parseParams(rest[:rp])
	if err != nil {
		return nil, err
	}
	rest = rest[rp+1:]
	lb := strings.IndexByte(rest, '{')
	if lb < 0 {
		return nil, &DefinitionError{Kind: MissingOpenBrace}
	}
	rb := strings.LastIndexByte(rest, '}')
	if rb < lb {
		return nil, &DefinitionError{Kind: MissingCloseBrace}
	}
	body, err := ParseString(rest[lb+1 : rb])
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p] = true
	}
	for _, name := range Placeholders(body) {
		if !known[name] {
			return nil, &DefinitionError{Kind: UnknownParameter, Text: name}
		}
	}
	return &FunctionDefinition{Name: name, Params: params, Template: body}, nil
}

// parseParams splits a comma-separated parameter list.
func parseParams(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	params := strings.Split(list, ",")
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		p = strings.TrimSpace(p)
		if !isName(p) {
			return nil, &DefinitionError{Kind: InvalidParameter, Text: p}
		}
		if seen[p] {
			return nil, &DefinitionError{Kind: DuplicateParameter, Text: p}
		}
		seen[p] = true
		params[i] = p
	}
	return params, nil
}

// isName reports whether s is a non-empty run of lowercase ASCII letters.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// LineKind is the kind of input a line holds.
type LineKind int8

const (
	// LineExpression is a plain expression.
	LineExpression LineKind = iota
	// LineDefinition is a function definition.
	LineDefinition
	// LineCall is a call of a defined function.
	LineCall
)

func (k LineKind) String() string {
	switch k {
	case LineDefinition:
		return "definition"
	case LineCall:
		return "call"
	default:
		return "expression"
	}
}

// Classify decides how a line of input should be handled. Lines starting
// with fn are definitions. Lines of the form name(...) are calls. Anything
// else is an expression.
func Classify(line string) LineKind {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "fn") {
		return LineDefinition
	}
	open := strings.IndexByte(line, '(')
	if open > 0 && strings.HasSuffix(line, ")") && isName(strings.TrimSpace(line[:open])) {
		return LineCall
	}
	return LineExpression
}
