package runstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

const defaultReportsDir = ".rpnsort/reports"

type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// NewJSONStore stores reports under cfg.Dir, resolved against root when relative.
func NewJSONStore(root string, cfg domain.ReportConfig, opts ...Option) *JSONStore {
	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	s := &JSONStore{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
		run.StartedAt = ts
	}
	ts = ts.UTC()

	slug := slugify(strings.TrimSuffix(filepath.Base(run.InputPath), filepath.Ext(run.InputPath)))
	if slug == "" {
		slug = "run"
	}

	id, path, err := s.reserve(fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(toReport(id, run), "", "  ")
	if err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename over the reserved name.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(id, filepath.Base(path), run)
	}

	return id, nil
}

// reserve creates an empty file for base, or base_2, base_3... if taken.
func (s *JSONStore) reserve(base string) (id, path string, err error) {
	for n := 1; ; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		path = filepath.Join(s.dir, id+".json")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_ = f.Close()
			return id, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", &domain.OpError{
				Op:   "runstore.reserve",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
	}
}

func (s *JSONStore) appendIndex(id, filename string, run domain.RunArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Input     string    `json:"input"`
		Output    string    `json:"output"`
		Solved    int       `json:"solved"`
		Failed    int       `json:"failed"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Input:     run.InputPath,
		Output:    run.OutputPath,
		Solved:    run.Solved,
		Failed:    run.Failed,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

type report struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	NonFinite string    `json:"non_finite"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Total     int       `json:"total"`
	Solved    int       `json:"solved"`
	Failed    int       `json:"failed"`
	Records   []record  `json:"records"`
}

type record struct {
	Line      int    `json:"line"`
	Source    string `json:"source"`
	Solved    bool   `json:"solved"`
	Infix     string `json:"infix,omitempty"`
	Value     any    `json:"value,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

func toReport(id string, run domain.RunArtifact) report {
	out := report{
		ID:        id,
		Input:     run.InputPath,
		Output:    run.OutputPath,
		NonFinite: string(run.NonFinite),
		StartedAt: run.StartedAt.UTC(),
		EndedAt:   run.EndedAt.UTC(),
		Total:     run.Total,
		Solved:    run.Solved,
		Failed:    run.Failed,
		Records:   make([]record, 0, len(run.Records)),
	}
	for _, r := range run.Records {
		rec := record{
			Line:      r.Line,
			Source:    r.Source,
			Solved:    r.Solved,
			ErrorKind: string(r.ErrorKind),
			Error:     r.Error,
		}
		if r.Solved {
			rec.Infix = r.Infix
			rec.Value = jsonValue(r.Value)
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// jsonValue keeps finite values numeric; JSON has no Inf or NaN, so those become strings.
func jsonValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return v
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
