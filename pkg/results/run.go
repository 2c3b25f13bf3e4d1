package results

import (
	"time"

	"github.com/google/uuid"
)

// SkipCounts tallies the per-row failures of a sweep for post-hoc audit.
// Skipped combinations produce no record; the counts are the only trace.
type SkipCounts struct {
	Generation    int `json:"generation"`    // generator failed during the generation protocol
	Judge         int `json:"judge"`         // judge call failed, row dropped
	Questionnaire int `json:"questionnaire"` // generator failed during the questionnaire protocol
	ParseErrors   int `json:"parse_errors"`  // judge replied but the verdict did not parse (row kept)
}

// Total returns the number of dropped rows across both protocols. Parse
// errors are excluded: those rows exist, flagged with a sentinel reasoning.
func (s SkipCounts) Total() int {
	return s.Generation + s.Judge + s.Questionnaire
}

// Run is one complete experiment batch: both result tables plus metadata.
// Tables are immutable once their protocol completes.
type Run struct {
	ID            uuid.UUID             `json:"id"`
	StartedAt     time.Time             `json:"started_at"`
	FinishedAt    time.Time             `json:"finished_at"`
	Generation    []GenerationRecord    `json:"generation"`
	Questionnaire []QuestionnaireRecord `json:"questionnaire"`
	Skips         SkipCounts            `json:"skips"`
}

// NewRun allocates a run with a fresh ID and start timestamp.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}

// Duration reports wall-clock time between start and finish.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
