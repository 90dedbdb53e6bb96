package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/usecase/postfix"
)

// NewBatch turns raw input lines into expression records.
// Blank lines are skipped; line numbers stay those of the input.
func NewBatch(lines []domain.Line) []domain.Expression {
	out := make([]domain.Expression, 0, len(lines))
	for i, l := range lines {
		if !l.Overflowed() && strings.TrimSpace(l.Text) == "" {
			continue
		}
		e := domain.NewExpression(i+1, l.Text)
		e.Overflow = l.Limit
		out = append(out, e)
	}
	return out
}

type SolveBatch struct {
	nonFinite domain.NonFinitePolicy
	log       *slog.Logger
}

type SolveOption func(*SolveBatch)

func WithSolveLogger(l *slog.Logger) SolveOption {
	return func(uc *SolveBatch) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewSolveBatch(nonFinite domain.NonFinitePolicy, opts ...SolveOption) *SolveBatch {
	if nonFinite == "" {
		nonFinite = domain.NonFiniteDrop
	}
	uc := &SolveBatch{
		nonFinite: nonFinite,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Solve evaluates every record in place. A record that fails keeps its error
// and the rest of the batch is still processed; only a done ctx stops it.
func (uc *SolveBatch) Solve(ctx context.Context, batch []domain.Expression) error {
	for i := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}

		uc.SolveOne(&batch[i])

		if e := batch[i]; e.Err != nil {
			uc.log.Debug("expression.failed",
				"line", e.Line,
				"source", e.Source,
				"kind", string(domain.KindOf(e.Err)),
				"error", e.Err.Error(),
			)
		}
	}
	return nil
}

func (uc *SolveBatch) SolveOne(e *domain.Expression) {
	e.Stack = nil
	e.Err = nil

	// Only a prefix of the line was read; its value would be wrong.
	if e.Overflow > 0 {
		e.Err = &domain.ExprError{
			Kind: domain.KindMalformedExpression,
			Msg:  fmt.Sprintf("line exceeds %d bytes", e.Overflow),
		}
		return
	}

	tokens, err := postfix.Tokenize(e.Source)
	if err != nil {
		e.Err = &domain.ExprError{Kind: domain.KindMalformedExpression, Msg: err.Error()}
		return
	}

	stack, err := postfix.Evaluate(tokens)
	e.Stack = stack
	if err != nil {
		e.Err = err
		return
	}

	if n := stack.Len(); n != 1 {
		e.Err = &domain.ExprError{
			Kind: domain.KindMalformedExpression,
			Msg:  fmt.Sprintf("%d values left on stack", n),
		}
		return
	}

	if v := stack[0].Value; uc.nonFinite == domain.NonFiniteDrop && (math.IsInf(v, 0) || math.IsNaN(v)) {
		e.Err = &domain.ExprError{
			Kind: domain.KindNonFinite,
			Msg:  stack[0].Infix + " = " + FormatValue(v),
		}
	}
}
