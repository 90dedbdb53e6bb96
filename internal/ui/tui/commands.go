package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/rpnsort/internal/usecase"
)

// cmdLoadResults evaluates the input file and delivers it in output order.
func cmdLoadResults(d Deps) tea.Cmd {
	return func() tea.Msg {
		batch, err := d.Check.Execute(context.Background(), d.InputPath)
		if err != nil {
			return resultsLoadedMsg{err: err}
		}
		usecase.Order(batch)
		return resultsLoadedMsg{batch: batch}
	}
}
