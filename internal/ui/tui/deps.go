package tui

import (
	"log/slog"

	"github.com/aalvaropc/rpnsort/internal/usecase"
)

type Deps struct {
	Check     *usecase.CheckExpressions
	InputPath string

	Logger  *slog.Logger
	// Debug adds the raw error and LogPath to the error screen.
	Debug   bool
	LogPath string
}
