package linefile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestReadLines_SplitsOnNewlines(t *testing.T) {
	p := writeFile(t, "in.txt", "3 4 +\r\n\n10 2 -\n5")

	got, err := NewReader().ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	want := []domain.Line{{Text: "3 4 +"}, {Text: ""}, {Text: "10 2 -"}, {Text: "5"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got=%+v", want, got)
	}
}

func TestReadLines_EmptyFile(t *testing.T) {
	p := writeFile(t, "empty.txt", "")

	got, err := NewReader().ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no lines, got=%q", got)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := NewReader().ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadLines_MarksOverlongLines(t *testing.T) {
	long := strings.Repeat("1", 10000)
	p := writeFile(t, "long.txt", long+"\n2 2 +\n")

	got, err := NewReader(WithMaxLineBytes(100)).ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got=%d", len(got))
	}
	if !got[0].Overflowed() || got[0].Limit != 100 {
		t.Fatalf("expected first line marked with limit 100, got limit=%d", got[0].Limit)
	}
	if len(got[0].Text) != 100 {
		t.Fatalf("expected a 100 byte prefix, got=%d", len(got[0].Text))
	}
	if got[1] != (domain.Line{Text: "2 2 +"}) {
		t.Fatalf("expected second line intact and unmarked, got=%+v", got[1])
	}
}

func TestReadLines_LineAtLimitIsWhole(t *testing.T) {
	exact := strings.Repeat("9", 100)
	p := writeFile(t, "exact.txt", exact+"\n"+exact+"1\n")

	got, err := NewReader(WithMaxLineBytes(100)).ReadLines(p)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if got[0].Overflowed() || got[0].Text != exact {
		t.Fatalf("expected line of exactly 100 bytes kept whole, got limit=%d", got[0].Limit)
	}
	if !got[1].Overflowed() {
		t.Fatalf("expected 101 byte line marked")
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "é" is two bytes; cutting at 2 would split it.
	got := truncate([]byte("aé"), 2)
	if string(got) != "a" {
		t.Fatalf("expected %q, got=%q", "a", got)
	}
	got = truncate([]byte("aé"), 3)
	if string(got) != "aé" {
		t.Fatalf("expected %q, got=%q", "aé", got)
	}
}

func TestIter_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Iter(strings.NewReader("a\nb\nc\n"), 10, func(_ []byte, _ bool) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 calls, got %d", n)
	}
}
