package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")

	ErrInvalidOperand      = errors.New("invalid operand")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrNonFinite           = errors.New("non-finite result")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"

	KindInvalidOperand      ErrorKind = "invalid_operand"
	KindMalformedExpression ErrorKind = "malformed_expression"
	KindNonFinite           ErrorKind = "non_finite"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExprError reports why a single expression could not be solved.
// It never aborts a batch; the record carrying it is left out of the output.
type ExprError struct {
	Kind   ErrorKind
	Token  string // Optional: offending token text
	Column int    // Optional: 1-based column of Token
	Msg    string
}

func (e *ExprError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := string(e.Kind)
	if e.Token != "" {
		base += fmt.Sprintf(" %q", e.Token)
		if e.Column > 0 {
			base += fmt.Sprintf(" at column %d", e.Column)
		}
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	return base
}

func (e *ExprError) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindInvalidOperand:
		return ErrInvalidOperand
	case KindMalformedExpression:
		return ErrMalformedExpression
	case KindNonFinite:
		return ErrNonFinite
	}
	return nil
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	var ee *ExprError
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}
	return false
}

// KindOf returns the kind carried by err, or "" when err is not classified.
func KindOf(err error) ErrorKind {
	var ee *ExprError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
