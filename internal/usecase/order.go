package usecase

import (
	"cmp"
	"math"
	"slices"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

// Order sorts the batch by value, ascending and stable. NaN results come
// after every number and failed records come last.
func Order(batch []domain.Expression) {
	slices.SortStableFunc(batch, compareExpressions)
}

func compareExpressions(a, b domain.Expression) int {
	if c := cmp.Compare(placement(a), placement(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.SortKey(), b.SortKey())
}

func placement(e domain.Expression) int {
	r, ok := e.Result()
	switch {
	case !ok:
		return 2
	case math.IsNaN(r.Value):
		return 1
	}
	return 0
}
