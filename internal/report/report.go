// Package report assembles the final scan document from per-repository
// outcomes.
package report

import (
	"time"

	"stackscan/internal/scan"
)

// Report is the complete result of one run. Entries preserve request order,
// one entry per requested repository, including failures.
type Report struct {
	StartedAt  time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Total      int            `json:"total"`
	Succeeded  int            `json:"succeeded"`
	Failed     int            `json:"failed"`
	Entries    []scan.Outcome `json:"entries"`
}

// Assemble builds a Report from collected outcomes. It only counts and
// wraps; entries are taken as-is, in the order given.
func Assemble(startedAt time.Time, elapsed time.Duration, entries []scan.Outcome) Report {
	rep := Report{
		StartedAt:  startedAt,
		DurationMS: elapsed.Milliseconds(),
		Total:      len(entries),
		Entries:    entries,
	}
	for _, e := range entries {
		if e.Failed() {
			rep.Failed++
		} else {
			rep.Succeeded++
		}
	}
	return rep
}
