package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

func solved(t *testing.T, policy domain.NonFinitePolicy, lines ...string) []domain.Expression {
	t.Helper()
	batch := NewBatch(textLines(lines...))
	require.NoError(t, NewSolveBatch(policy).Solve(context.Background(), batch))
	return batch
}

func sources(batch []domain.Expression) []string {
	out := make([]string, 0, len(batch))
	for _, e := range batch {
		out = append(out, e.Source)
	}
	return out
}

func TestOrder_AscendingWithFailuresLast(t *testing.T) {
	batch := solved(t, domain.NonFiniteDrop,
		"10 2 -",
		"3 x +",
		"1 1 +",
		"4 0 /",
		"-3",
		"5 1 2 + 4 * + 3 -",
	)

	Order(batch)
	require.Equal(t, []string{
		"-3",
		"1 1 +",
		"10 2 -",
		"5 1 2 + 4 * + 3 -",
		"3 x +",
		"4 0 /",
	}, sources(batch))
}

func TestOrder_NonFinitePlacementWhenKept(t *testing.T) {
	batch := solved(t, domain.NonFiniteKeep,
		"0 0 /",
		"bad",
		"4 0 /",
		"1e308 10 *",
		"-4 0 /",
		"1",
	)

	Order(batch)
	require.Equal(t, []string{
		"-4 0 /",
		"1",
		"4 0 /",
		"1e308 10 *",
		"0 0 /",
		"bad",
	}, sources(batch))
}

func TestOrder_StableForTies(t *testing.T) {
	batch := solved(t, domain.NonFiniteDrop, "2 2 +", "1 3 +", "4", "x", "y")

	Order(batch)
	require.Equal(t, []string{"2 2 +", "1 3 +", "4", "x", "y"}, sources(batch))
}

func TestOrder_Empty(t *testing.T) {
	var batch []domain.Expression
	Order(batch)
	require.Empty(t, batch)
}
