package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// resultItem is one list row: the output line, or the source of a failed one.
type resultItem struct {
	expr domain.Expression
}

func (i resultItem) Title() string {
	if r, ok := i.expr.Result(); ok {
		return clampString(usecase.FormatLine(r), 120)
	}
	return clampString(i.expr.Source, 120)
}

func (i resultItem) Description() string {
	if i.expr.Solved() {
		return fmt.Sprintf("line %d • ok", i.expr.Line)
	}
	return fmt.Sprintf("line %d • %s", i.expr.Line, UserMessage(i.expr.Err))
}

func (i resultItem) FilterValue() string { return i.expr.Source }

func renderDetails(t Theme, e domain.Expression) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Line:    %d\n", e.Line)
	fmt.Fprintf(&b, "Postfix: %s\n\n", strings.TrimSpace(e.Source))

	if r, ok := e.Result(); ok {
		b.WriteString(t.OK.Render("OK") + "\n\n")
		fmt.Fprintf(&b, "Infix:   %s\n", usecase.StripOuter(r))
		fmt.Fprintf(&b, "Value:   %s\n", usecase.FormatValue(r.Value))
		return b.String()
	}

	b.WriteString(t.Fail.Render("FAIL") + "\n\n")
	fmt.Fprintf(&b, "Error:   %s\n", UserMessage(e.Err))
	if kind := domain.KindOf(e.Err); kind != "" {
		fmt.Fprintf(&b, "Kind:    %s\n", kind)
	}
	if n := e.Stack.Len(); n > 0 {
		b.WriteString("\nStack at failure:\n")
		for i, term := range e.Stack {
			fmt.Fprintf(&b, "  %d. %s = %s\n", i+1, term.Infix, usecase.FormatValue(term.Value))
		}
	}
	return b.String()
}
