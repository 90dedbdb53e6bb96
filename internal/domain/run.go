package domain

import "time"

// RecordOutcome is the persisted view of one evaluated expression.
type RecordOutcome struct {
	Line   int
	Source string

	Infix string
	Value float64

	Solved    bool
	ErrorKind ErrorKind
	Error     string
}

// RunArtifact represents a persisted run for reproducibility.
type RunArtifact struct {
	InputPath  string
	OutputPath string

	StartedAt time.Time
	EndedAt   time.Time

	NonFinite NonFinitePolicy

	Total   int
	Solved  int
	Failed  int
	Records []RecordOutcome
}

// NewRecordOutcome flattens an evaluated expression.
func NewRecordOutcome(e Expression) RecordOutcome {
	out := RecordOutcome{Line: e.Line, Source: e.Source}
	if r, ok := e.Result(); ok {
		out.Solved = true
		out.Infix = r.Infix
		out.Value = r.Value
		return out
	}
	if e.Err != nil {
		out.ErrorKind = KindOf(e.Err)
		out.Error = e.Err.Error()
	}
	return out
}
