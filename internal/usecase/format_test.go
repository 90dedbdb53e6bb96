package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{14, "14"},
		{-10, "-10"},
		{0.5, "0.5"},
		{1.0 / 3.0, "0.3333333333333333"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatValue(c.in))
	}
}

func TestStripOuter(t *testing.T) {
	assert.Equal(t, "3 + 4", StripOuter(domain.Result{Infix: "(3 + 4)", Compound: true}))
	assert.Equal(t, "(5 + ((1 + 2) * 4)) - 3",
		StripOuter(domain.Result{Infix: "((5 + ((1 + 2) * 4)) - 3)", Compound: true}))
	assert.Equal(t, "5", StripOuter(domain.Result{Infix: "5"}))
	assert.Equal(t, "12345", StripOuter(domain.Result{Infix: "12345"}))
}

func TestFormat_SkipsFailedRecords(t *testing.T) {
	batch := solved(t, domain.NonFiniteDrop, "3 4 +", "3 x +", "10 2 -", "4 0 /", "5")
	Order(batch)

	require.Equal(t, []string{
		"5 = 5",
		"3 + 4 = 7",
		"10 - 2 = 8",
	}, Format(batch))
}

func TestFormat_KeepsNonFinite(t *testing.T) {
	batch := solved(t, domain.NonFiniteKeep, "4 0 /", "1 2 +")
	Order(batch)

	require.Equal(t, []string{"1 + 2 = 3", "4 / 0 = +Inf"}, Format(batch))
}

func TestFormat_WorkedExample(t *testing.T) {
	batch := solved(t, domain.NonFiniteDrop, "5 1 2 + 4 * + 3 -")
	require.Equal(t, []string{"(5 + ((1 + 2) * 4)) - 3 = 14"}, Format(batch))
}
