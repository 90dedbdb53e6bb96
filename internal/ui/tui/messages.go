package tui

import "github.com/aalvaropc/rpnsort/internal/domain"

type resultsLoadedMsg struct {
	batch []domain.Expression
	err   error
}
