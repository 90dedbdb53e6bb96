package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

// Finder locates a directory holding rpnsort.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to FileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

// Resolve finds and loads the nearest config above startDir. When there is
// none it returns the defaults and an empty root.
func (f *Finder) Resolve(startDir string) (domain.Config, string, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := LoadFile(filepath.Join(root, f.ConfigFile))
	if err != nil {
		return cfg, root, err
	}
	return cfg, root, nil
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// An input file path starts the search from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "config.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
