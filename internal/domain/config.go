package domain

import (
	"fmt"
	"strings"
)

// NonFinitePolicy decides what happens to results that are +Inf, -Inf or NaN.
type NonFinitePolicy string

const (
	// NonFiniteDrop marks such expressions failed, leaving them out of the output.
	NonFiniteDrop NonFinitePolicy = "drop"
	// NonFiniteKeep emits them; -Inf sorts first, +Inf after every finite value
	// and NaN after +Inf.
	NonFiniteKeep NonFinitePolicy = "keep"
)

func ParseNonFinitePolicy(s string) (NonFinitePolicy, error) {
	switch p := NonFinitePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case NonFiniteDrop, NonFiniteKeep:
		return p, nil
	case "":
		return NonFiniteDrop, nil
	default:
		return "", fmt.Errorf("%w: non_finite must be drop or keep, got %q", ErrInvalidConfig, s)
	}
}

// Config represents the rpnsort configuration loaded from rpnsort.yaml.
type Config struct {
	NonFinite NonFinitePolicy
	Reader    ReaderConfig
	Report    ReportConfig
	Log       LogConfig
}

type ReaderConfig struct {
	MaxLineBytes int
}

type ReportConfig struct {
	Enabled bool
	Dir     string
}

type LogConfig struct {
	Dir   string
	Debug bool
}

// DefaultConfig provides sane defaults if rpnsort.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		NonFinite: NonFiniteDrop,
		Reader:    ReaderConfig{MaxLineBytes: 64 * 1024},
		Report: ReportConfig{
			Enabled: false,
			Dir:     ".rpnsort/reports",
		},
		Log: LogConfig{Dir: ".rpnsort/logs"},
	}
}

// Job names the two files of one run.
type Job struct {
	InputPath  string
	OutputPath string
}
