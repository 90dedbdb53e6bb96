package usecase

import (
	"context"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

// CheckExpressions evaluates an input file without writing any output.
type CheckExpressions struct {
	source ports.LineSource
	solver *SolveBatch
}

func NewCheckExpressions(src ports.LineSource, solver *SolveBatch) *CheckExpressions {
	if solver == nil {
		solver = NewSolveBatch(domain.NonFiniteDrop)
	}
	return &CheckExpressions{source: src, solver: solver}
}

// Execute returns every non-blank line's record in input order.
func (uc *CheckExpressions) Execute(ctx context.Context, inputPath string) ([]domain.Expression, error) {
	lines, err := uc.source.ReadLines(inputPath)
	if err != nil {
		return nil, err
	}

	batch := NewBatch(lines)
	if err := uc.solver.Solve(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// CountFailed returns how many records in batch were not solved.
func CountFailed(batch []domain.Expression) int {
	n := 0
	for _, e := range batch {
		if !e.Solved() {
			n++
		}
	}
	return n
}
