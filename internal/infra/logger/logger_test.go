package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONUnderRoot(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Dir: "logs", Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(root, "logs", "rpnsort.log")
	if Path() != want {
		t.Fatalf("expected path=%s, got=%s", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time set")
	}

	L().Debug("batch.test", "line", 3)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	for _, w := range []string{`"msg":"logger.initialized"`, `"msg":"batch.test"`, `"line":3`} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected log to contain %s, got:\n%s", w, s)
		}
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := Setup(Config{Dir: dir})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden.event")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(dir, "rpnsort.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden.event") {
		t.Fatalf("expected debug event filtered out")
	}
}

func TestSetup_FailureFallsBackToDiscard(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Dir: filepath.Join(blocker, "logs")})
	if err == nil {
		t.Fatalf("expected error")
	}
	if cleanup != nil {
		t.Fatalf("expected nil cleanup on failure")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready")
	}
	L().Info("still.works")
}
