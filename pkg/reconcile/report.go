package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// Report describes the outcome of one engine operation.
type Report struct {
	// Operation is the name of the engine method that produced the report.
	Operation string `json:"operation" yaml:"operation"`

	Matched   int `json:"matched" yaml:"matched"`
	Unmatched int `json:"unmatched" yaml:"unmatched"`
	Added     int `json:"added" yaml:"added"`
	Removed   int `json:"removed" yaml:"removed"`
	Renamed   int `json:"renamed" yaml:"renamed"`
	Updated   int `json:"updated" yaml:"updated"`

	// Renames lists file bouquets whose file name changed.
	Renames []Rename `json:"renames,omitempty" yaml:"renames,omitempty"`

	// Warnings describe unmatched references and skipped entities.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Rename records a file bouquet rename.
type Rename struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

func newReport(operation string) *Report {
	return &Report{Operation: operation, StartTime: time.Now()}
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Report) finish() {
	r.Duration = time.Since(r.StartTime)
}

// HasChanges reports whether the operation mutated the settings.
func (r *Report) HasChanges() bool {
	return r.Added+r.Removed+r.Renamed+r.Updated > 0
}

// HasWarnings returns true if there were warnings.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a one line description of the report.
func (r *Report) Summary() string {
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(r.Matched, "matched")
	add(r.Unmatched, "unmatched")
	add(r.Added, "added")
	add(r.Removed, "removed")
	add(r.Renamed, "renamed")
	add(r.Updated, "updated")
	if len(parts) == 0 {
		return r.Operation + ": nothing to do"
	}
	return r.Operation + ": " + strings.Join(parts, ", ")
}
