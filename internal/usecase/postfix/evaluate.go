package postfix

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

// Evaluate runs tokens through the evaluation stack and returns whatever is
// left on it. Checking that exactly one term remains is up to the caller.
//
// For an operator, the term pushed first is the left operand: "10 2 -" is
// "(10 - 2)" and evaluates to 8.
//
// Division by zero is not detected here; it yields ±Inf or NaN.
func Evaluate(tokens []domain.Token) (domain.Stack, error) {
	stack := make(domain.Stack, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Class != domain.ClassOperator {
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return stack, &domain.ExprError{
					Kind:   domain.KindInvalidOperand,
					Token:  tok.Text,
					Column: tok.Column,
					Msg:    parseFailure(err),
				}
			}
			stack.Push(domain.Term{Value: v, Infix: tok.Text})
			continue
		}

		left, right, ok := stack.Pop2()
		if !ok {
			return stack, &domain.ExprError{
				Kind:   domain.KindMalformedExpression,
				Token:  tok.Text,
				Column: tok.Column,
				Msg:    fmt.Sprintf("operator needs 2 operands, have %d", stack.Len()),
			}
		}

		stack.Push(domain.Term{
			Value:    apply(tok.Text, left.Value, right.Value),
			Infix:    "(" + left.Infix + " " + tok.Text + " " + right.Infix + ")",
			Compound: true,
		})
	}

	return stack, nil
}

func apply(op string, left, right float64) float64 {
	switch op {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		return left / right
	}
	panic("postfix: unknown operator " + op)
}

func parseFailure(err error) string {
	if errors.Is(err, strconv.ErrRange) {
		return "out of float64 range"
	}
	return "not a number"
}
