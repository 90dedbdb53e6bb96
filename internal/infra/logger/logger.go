package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const fileName = "rpnsort.log"

type Config struct {
	// Dir holds rpnsort.log; relative paths are resolved against Root.
	Dir   string
	Root  string
	Debug bool
}

var (
	mu       sync.RWMutex
	global   = discard()
	logFile  *os.File
	logPath  string
	initedAt time.Time
)

func Setup(cfg Config) (func() error, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		dir = filepath.Join(".rpnsort", "logs")
	}
	if !filepath.IsAbs(dir) {
		root := cfg.Root
		if root == "" {
			root = "."
		}
		dir = filepath.Join(root, dir)
	}
	dir = filepath.Clean(dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		initedAt = time.Time{}
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// newHandler writes JSON lines with UTC RFC3339Nano timestamps.
func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
	initedAt = time.Time{}
}
