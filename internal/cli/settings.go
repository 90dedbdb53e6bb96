package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/infra/config"
	"github.com/aalvaropc/rpnsort/internal/infra/linefile"
	"github.com/aalvaropc/rpnsort/internal/infra/logger"
	"github.com/aalvaropc/rpnsort/internal/ports"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

type globalFlags struct {
	configPath string
	debug      bool
	nonFinite  string

	locator ports.ConfigLocator
}

// settings is the resolved configuration of one invocation.
type settings struct {
	root string
	cfg  domain.Config
}

// loadSettings merges rpnsort.yaml (explicit, or the nearest one above
// inputPath) with command-line flags. Flags win.
func loadSettings(cmd *cobra.Command, g *globalFlags, inputPath string) (*settings, error) {
	var (
		cfg  domain.Config
		root string
		err  error
	)

	if p := strings.TrimSpace(g.configPath); p != "" {
		abs, aerr := filepath.Abs(p)
		if aerr != nil {
			return nil, fmt.Errorf("invalid config path: %w", aerr)
		}
		if cfg, err = config.LoadFile(abs); err != nil {
			return nil, err
		}
		root = filepath.Dir(abs)
	} else {
		if cfg, root, err = g.locator.Resolve(inputPath); err != nil {
			return nil, err
		}
	}

	if root == "" {
		wd, werr := os.Getwd()
		if werr != nil {
			wd = "."
		}
		root, _ = filepath.Abs(wd)
	}

	if cmd.Flags().Changed("non-finite") {
		p, perr := domain.ParseNonFinitePolicy(g.nonFinite)
		if perr != nil {
			return nil, fmt.Errorf("--non-finite: %w", perr)
		}
		cfg.NonFinite = p
	}
	if g.debug {
		cfg.Log.Debug = true
	}

	return &settings{root: root, cfg: cfg}, nil
}

func (s *settings) setupLogging() func() {
	cleanup, _ := logger.Setup(logger.Config{
		Root:  s.root,
		Dir:   s.cfg.Log.Dir,
		Debug: s.cfg.Log.Debug,
	})
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}

func (s *settings) reader() *linefile.Reader {
	return linefile.NewReader(linefile.WithMaxLineBytes(s.cfg.Reader.MaxLineBytes))
}

func (s *settings) solver() *usecase.SolveBatch {
	return usecase.NewSolveBatch(s.cfg.NonFinite, usecase.WithSolveLogger(logger.L()))
}
