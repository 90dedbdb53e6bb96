package usecase

import (
	"github.com/aalvaropc/rpnsort/internal/domain"
)

type fakeSource struct {
	lines []string
	err   error
	calls int
}

func (f *fakeSource) ReadLines(_ string) ([]domain.Line, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return textLines(f.lines...), nil
}

func textLines(texts ...string) []domain.Line {
	out := make([]domain.Line, 0, len(texts))
	for _, t := range texts {
		out = append(out, domain.Line{Text: t})
	}
	return out
}

type fakeSink struct {
	path   string
	lines  []string
	err    error
	writes int
}

func (f *fakeSink) WriteLines(path string, lines []string) error {
	f.writes++
	f.path = path
	f.lines = append([]string(nil), lines...)
	return f.err
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

type fakeInitializer struct {
	dir   string
	force bool
}

func (f *fakeInitializer) Init(dir string, force bool) (string, error) {
	f.dir = dir
	f.force = force
	return dir + "/rpnsort.yaml", nil
}
