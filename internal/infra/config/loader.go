package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Finder and LoadConfig.
const FileName = "rpnsort.yaml"

// LoadConfig loads rpnsort.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile loads a config file at an explicit path and applies defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// apply puts parsed values on top of defaults.
func apply(cfg *domain.Config, y yamlConfig) error {
	p, err := domain.ParseNonFinitePolicy(y.Rpnsort.NonFinite)
	if err != nil {
		return err
	}
	cfg.NonFinite = p

	switch n := y.Rpnsort.Reader.MaxLineBytes; {
	case n < 0:
		return fmt.Errorf("reader.max_line_bytes must be positive, got %d", n)
	case n > 0:
		cfg.Reader.MaxLineBytes = n
	}

	if y.Rpnsort.Report.Enabled != nil {
		cfg.Report.Enabled = *y.Rpnsort.Report.Enabled
	}
	if y.Rpnsort.Report.Dir != "" {
		cfg.Report.Dir = y.Rpnsort.Report.Dir
	}
	if y.Rpnsort.Log.Dir != "" {
		cfg.Log.Dir = y.Rpnsort.Log.Dir
	}
	if y.Rpnsort.Log.Debug != nil {
		cfg.Log.Debug = *y.Rpnsort.Log.Debug
	}
	return nil
}
