package lifecycle

import (
	"context"
	"time"

	"github.com/gnames/datablock/pkg/sources"
)

// Loader writes documents into the database.
//
// Every document is written in its own transaction. A failed document
// does not stop the run, its error is kept in the report.
type Loader interface {
	// Load reads, parses and stores inputs in the given order. The error
	// is not nil only when all documents failed or the context was
	// cancelled.
	Load(ctx context.Context, inputs []sources.Input) (*Report, error)
}

// Status is the outcome of a single document.
type Status string

const (
	StatusLoaded  Status = "loaded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// FileResult describes what happened to one document.
type FileResult struct {
	Name     string `json:"name"`
	DUNS     string `json:"duns,omitempty"`
	Category string `json:"category,omitempty"`

	// Rows is the number of inserted rows, nested rows included.
	Rows   int    `json:"rows"`
	Status Status `json:"status"`
	Err    error  `json:"-"`
}

// Report summarizes a load run.
type Report struct {
	RunID     string        `json:"runId"`
	Files     []FileResult  `json:"files"`
	Succeeded int           `json:"succeeded"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Rows      int           `json:"rows"`
	Duration  time.Duration `json:"duration"`
}

// Add appends a file result and updates the counters.
func (r *Report) Add(fr FileResult) {
	r.Files = append(r.Files, fr)
	switch fr.Status {
	case StatusLoaded:
		r.Succeeded++
		r.Rows += fr.Rows
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}

// Errors returns failed file results.
func (r *Report) Errors() []FileResult {
	var res []FileResult
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			res = append(res, f)
		}
	}
	return res
}
