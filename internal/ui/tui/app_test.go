package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

type fakeSource struct {
	lines []string
	err   error
}

func (f fakeSource) ReadLines(_ string) ([]domain.Line, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Line, 0, len(f.lines))
	for _, l := range f.lines {
		out = append(out, domain.Line{Text: l})
	}
	return out, nil
}

func loadedModel(t *testing.T, src fakeSource) model {
	t.Helper()
	deps := Deps{
		Check:     usecase.NewCheckExpressions(src, nil),
		InputPath: "exprs.txt",
	}
	m := newModel(deps)

	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestModel_LoadsOrderedResults(t *testing.T) {
	m := loadedModel(t, fakeSource{lines: []string{"10 2 -", "3 x +", "3 4 +"}})

	if m.scr != screenList {
		t.Fatalf("expected list screen, got=%d", m.scr)
	}
	if m.failed != 1 {
		t.Fatalf("expected 1 failed, got=%d", m.failed)
	}

	items := m.list.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got=%d", len(items))
	}
	first := items[0].(resultItem)
	if first.Title() != "3 + 4 = 7" {
		t.Fatalf("expected smallest first, got=%q", first.Title())
	}
	last := items[2].(resultItem)
	if !strings.Contains(last.Description(), "Not a number") {
		t.Fatalf("expected failure last, got=%q", last.Description())
	}
}

func TestModel_EnterShowsDetailsEscReturns(t *testing.T) {
	m := loadedModel(t, fakeSource{lines: []string{"3 4 +"}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.scr != screenDetail {
		t.Fatalf("expected detail screen, got=%d", m.scr)
	}
	if v := m.View(); !strings.Contains(v, "Infix:   3 + 4") || !strings.Contains(v, "Value:   7") {
		t.Fatalf("unexpected detail view:\n%s", v)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.scr != screenList {
		t.Fatalf("expected list screen, got=%d", m.scr)
	}
}

func TestModel_LoadErrorShowsMessage(t *testing.T) {
	err := &domain.OpError{Op: "linefile.open", Kind: domain.KindNotFound, Path: "/x/exprs.txt", Err: errors.New("nope")}
	m := loadedModel(t, fakeSource{err: err})

	if m.scr != screenError {
		t.Fatalf("expected error screen, got=%d", m.scr)
	}
	if v := m.View(); !strings.Contains(v, "File not found: exprs.txt") {
		t.Fatalf("unexpected error view:\n%s", v)
	}
}

func TestModel_LoadErrorDebugShowsLogPath(t *testing.T) {
	err := &domain.OpError{Op: "linefile.read", Kind: domain.KindExecution, Path: "/x/exprs.txt", Err: errors.New("is a directory")}
	deps := Deps{
		Check:     usecase.NewCheckExpressions(fakeSource{err: err}, nil),
		InputPath: "exprs.txt",
		Debug:     true,
		LogPath:   "/x/.rpnsort/logs/rpnsort.log",
	}
	m := newModel(deps)
	next, _ := m.Update(m.Init()())
	m = next.(model)

	v := m.View()
	for _, want := range []string{"Cannot read exprs.txt", "is a directory", "/x/.rpnsort/logs/rpnsort.log"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in error view:\n%s", want, v)
		}
	}

	deps.Debug = false
	m = newModel(deps)
	next, _ = m.Update(m.Init()())
	if v := next.(model).View(); strings.Contains(v, "rpnsort.log") {
		t.Fatalf("expected no log path without debug:\n%s", v)
	}
}

func TestRenderDetails_FailureShowsStack(t *testing.T) {
	e := domain.NewExpression(2, "3 4")
	e.Stack = domain.Stack{{Value: 3, Infix: "3"}, {Value: 4, Infix: "4"}}
	e.Err = &domain.ExprError{Kind: domain.KindMalformedExpression, Msg: "2 values left on stack"}

	out := renderDetails(DefaultTheme(), e)
	for _, want := range []string{"Line:    2", "malformed_expression", "1. 3 = 3", "2. 4 = 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
