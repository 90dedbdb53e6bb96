package postfix

import "github.com/aalvaropc/rpnsort/internal/domain"

// IsOperator reports whether text is exactly one of + - * /.
func IsOperator(text string) bool {
	switch text {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// Classify treats every non-operator token as an operand candidate.
func Classify(text string) domain.TokenClass {
	if IsOperator(text) {
		return domain.ClassOperator
	}
	return domain.ClassOperand
}
