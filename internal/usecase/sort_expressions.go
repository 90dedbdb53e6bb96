package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

// SortExpressions is the whole pipeline: read, solve, order, format, write.
type SortExpressions struct {
	source ports.LineSource
	sink   ports.ResultSink
	store  ports.ArtifactStore
	solver *SolveBatch

	log *slog.Logger
	now func() time.Time
}

type SortOption func(*SortExpressions)

func WithLogger(l *slog.Logger) SortOption {
	return func(uc *SortExpressions) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) SortOption {
	return func(uc *SortExpressions) { uc.now = now }
}

// NewSortExpressions wires the pipeline. store may be nil to skip run artifacts.
func NewSortExpressions(src ports.LineSource, sink ports.ResultSink, store ports.ArtifactStore, solver *SolveBatch, opts ...SortOption) *SortExpressions {
	if solver == nil {
		solver = NewSolveBatch(domain.NonFiniteDrop)
	}
	uc := &SortExpressions{
		source: src,
		sink:   sink,
		store:  store,
		solver: solver,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one job. Per-expression failures are reported in the artifact,
// never returned; the error is reserved for I/O and cancellation. The report
// is best effort: once the output is written, a failed save is only logged
// and the returned id is empty.
func (uc *SortExpressions) Execute(ctx context.Context, job domain.Job) (domain.RunArtifact, string, error) {
	run := domain.RunArtifact{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
		StartedAt:  uc.now(),
		NonFinite:  uc.solver.nonFinite,
	}

	lines, err := uc.source.ReadLines(job.InputPath)
	if err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	batch := NewBatch(lines)
	if err := uc.solver.Solve(ctx, batch); err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	Order(batch)
	out := Format(batch)

	if err := uc.sink.WriteLines(job.OutputPath, out); err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	run.EndedAt = uc.now()
	run.Total = len(batch)
	run.Solved = len(out)
	run.Failed = run.Total - run.Solved
	run.Records = make([]domain.RecordOutcome, 0, len(batch))
	for _, e := range batch {
		run.Records = append(run.Records, domain.NewRecordOutcome(e))
	}

	uc.log.Info("batch.solved",
		"input", job.InputPath,
		"output", job.OutputPath,
		"total", run.Total,
		"solved", run.Solved,
		"failed", run.Failed,
	)

	if uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		uc.log.Warn("report.failed", "input", job.InputPath, "error", err.Error())
		return run, "", nil
	}
	uc.log.Info("report.saved", "id", id)
	return run, id, nil
}
