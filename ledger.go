package menuscrape

import (
	"context"
	"time"
)

// Result status values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one invocation over the catalog.
type Run struct {
	ID        string    `json:"id"`
	Dir       string    `json:"dir"`
	StartedAt time.Time `json:"startedAt"`
}

// Result records the outcome for one source in one run.
type Result struct {
	RunID  string `json:"runId"`
	Source string `json:"source"`
	Status string `json:"status"`

	// Code and Message are set for failures.
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	Path     string `json:"path,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Checksum string `json:"checksum,omitempty"`
	Pages    int    `json:"pages,omitempty"`

	// Changed reports whether the checksum differs from the previous
	// successful result for the source. True when there is none.
	Changed bool `json:"changed"`

	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.RunID == "" {
		return Errorf(EINVALID, "result run ID required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "result source required")
	}
	if r.Status != StatusOK && r.Status != StatusFailed {
		return Errorf(EINVALID, "invalid result status %q", r.Status)
	}
	return nil
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	RunID  *string `json:"runId"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunLedger records run history.
type RunLedger interface {
	// BeginRun assigns an ID when empty and stores the run.
	BeginRun(ctx context.Context, run *Run) error

	// RecordResult stores the outcome for one source.
	RecordResult(ctx context.Context, result *Result) error

	// LastSuccess returns the latest successful result for a source.
	// Returns ENOTFOUND if there is none.
	LastSuccess(ctx context.Context, source string) (*Result, error)

	// FindResults returns results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*Result, error)
}
