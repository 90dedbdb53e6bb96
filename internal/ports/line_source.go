package ports

import "github.com/aalvaropc/rpnsort/internal/domain"

// LineSource reads the raw lines of an input file, without terminators.
// Lines over the source's size limit come back marked, never silently cut.
type LineSource interface {
	ReadLines(path string) ([]domain.Line, error)
}
