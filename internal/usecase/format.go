package usecase

import (
	"strconv"
	"strings"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

// FormatValue renders v as the shortest decimal that round-trips: 7, 0.5, +Inf, NaN.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StripOuter removes the parentheses wrapping a compound infix string.
// Bare operands are returned unchanged.
func StripOuter(r domain.Result) string {
	s := r.Infix
	if r.Compound && len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1]
	}
	return s
}

func FormatLine(r domain.Result) string {
	return StripOuter(r) + " = " + FormatValue(r.Value)
}

// Format renders one line per solved record, in batch order.
func Format(batch []domain.Expression) []string {
	out := make([]string, 0, len(batch))
	for _, e := range batch {
		r, ok := e.Result()
		if !ok {
			continue
		}
		out = append(out, FormatLine(r))
	}
	return out
}
