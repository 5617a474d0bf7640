// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Artifact is one named output document.
type Artifact struct {
	// Name is the output file name (e.g. "split_1_1-3.pdf").
	Name string `json:"name" yaml:"name"`

	// Pages is the number of pages in the output document.
	Pages int `json:"pages" yaml:"pages"`

	// Data holds the serialized document.
	Data []byte `json:"-" yaml:"-"`
}

// FileResult records the outcome of processing one input in a batch.
type FileResult struct {
	// Name identifies the input document.
	Name string `json:"name" yaml:"name"`

	// OK reports whether the file was processed.
	OK bool `json:"ok" yaml:"ok"`

	// Message is a human-readable failure reason; empty on success.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Output is the produced document; nil on failure.
	Output *Artifact `json:"output,omitempty" yaml:"output,omitempty"`
}

// BatchResult holds the outcome of a per-file batch run.
type BatchResult struct {
	Succeeded int          `json:"succeeded" yaml:"succeeded"`
	Failed    int          `json:"failed" yaml:"failed"`
	Files     []FileResult `json:"files" yaml:"files"`
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Record appends a file outcome and updates the counters.
func (r *BatchResult) Record(fr FileResult) {
	if fr.OK {
		r.Succeeded++
	} else {
		r.Failed++
	}
	r.Files = append(r.Files, fr)
}

// HistoryStatus is the final state of a journaled operation.
type HistoryStatus string

const (
	StatusOK      HistoryStatus = "ok"
	StatusPartial HistoryStatus = "partial"
	StatusFailed  HistoryStatus = "failed"
)

// HistoryRecord is one journaled operation run.
type HistoryRecord struct {
	ID        int64         `json:"id" yaml:"id"`
	Operation string        `json:"operation" yaml:"operation"`
	Inputs    []string      `json:"inputs" yaml:"inputs"`
	Outputs   []string      `json:"outputs" yaml:"outputs"`
	Status    HistoryStatus `json:"status" yaml:"status"`
	Message   string        `json:"message,omitempty" yaml:"message,omitempty"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}
