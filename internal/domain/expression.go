package domain

import "math"

// Sentinel is the sort key given to expressions that could not be solved.
// It is never reported as a value.
const Sentinel = math.MaxFloat64

// TokenClass tells operands and operators apart.
type TokenClass int

const (
	ClassOperand TokenClass = iota
	ClassOperator
)

func (c TokenClass) String() string {
	switch c {
	case ClassOperator:
		return "operator"
	default:
		return "operand"
	}
}

// Token is one whitespace-delimited word of a postfix line.
type Token struct {
	Text   string
	Column int // 1-based
	Class  TokenClass
}

// Term is a single evaluation stack item: a value and the infix text that
// produced it, always moved together.
type Term struct {
	Value    float64
	Infix    string
	Compound bool // produced by an operator, so Infix is wrapped in parens
}

// Stack is the evaluation stack of Terms.
type Stack []Term

func (s Stack) Len() int { return len(s) }

func (s *Stack) Push(t Term) {
	*s = append(*s, t)
}

// Pop2 removes the two topmost terms. top is the most recently pushed one.
// ok is false, and the stack untouched, when fewer than two terms are present.
func (s *Stack) Pop2() (below, top Term, ok bool) {
	n := len(*s)
	if n < 2 {
		return Term{}, Term{}, false
	}
	below, top = (*s)[n-2], (*s)[n-1]
	*s = (*s)[:n-2]
	return below, top, true
}

// Result is the outcome of a solved expression.
type Result struct {
	Infix    string
	Value    float64
	Compound bool
}

// Line is one raw input line. Limit is set when the line was longer than
// the reader allows; Text then holds only a prefix and must not be evaluated.
type Line struct {
	Text  string
	Limit int
}

func (l Line) Overflowed() bool { return l.Limit > 0 }

// Expression is one non-blank input line and what evaluating it produced.
type Expression struct {
	Line     int // 1-based line number in the input
	Source   string
	// Overflow is the byte limit the line exceeded, 0 if it was read whole.
	Overflow int

	Stack Stack
	Err   error
}

func NewExpression(line int, source string) Expression {
	return Expression{Line: line, Source: source}
}

// Solved reports whether the expression evaluated to exactly one term.
func (e Expression) Solved() bool {
	return e.Err == nil && len(e.Stack) == 1
}

// Result returns the solved value, or false when the expression failed.
func (e Expression) Result() (Result, bool) {
	if !e.Solved() {
		return Result{}, false
	}
	t := e.Stack[0]
	return Result{Infix: t.Infix, Value: t.Value, Compound: t.Compound}, true
}

// SortKey is the value used for ordering; failed expressions get Sentinel.
func (e Expression) SortKey() float64 {
	r, ok := e.Result()
	if !ok {
		return Sentinel
	}
	return r.Value
}
