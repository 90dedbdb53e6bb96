package linefile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ResultSink = (*Writer)(nil)

// WriteLines writes each line followed by "\n". An empty slice produces an empty file.
func (w *Writer) WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "linefile.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return &domain.OpError{
			Op:   "linefile.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "linefile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
