// Package scan defines the domain types shared by the scanner core:
// repository requests, working copies, analyzers, and per-repository outcomes.
package scan

import "context"

// Request identifies one repository to scan. Requests are created in input
// order and that order is preserved in the final report. A URL appearing
// twice in the input yields two independent requests.
type Request struct {
	// Name is the short display name, usually derived from the URL.
	Name string `json:"name"`
	// URL is the repository identifier: a remote clone URL or a local path.
	URL string `json:"url"`
}

// WorkingCopy is a local materialization of one repository, owned exclusively
// by the pipeline scanning it.
type WorkingCopy struct {
	Path string

	// Temporary reports whether the acquirer created this copy (a clone into
	// the workspace) rather than resolving a pre-existing local path. Only
	// temporary copies are ever removed by cleanup.
	Temporary bool
}

// Analyzer inspects a working copy and produces findings.
//
// Implementations must honor ctx cancellation and own any per-analysis
// timeouts. The engine treats the returned findings as opaque; the only
// requirement is that they serialize to JSON.
type Analyzer interface {
	Analyze(ctx context.Context, wc WorkingCopy) (any, error)
}

// Stage identifies the pipeline stage at which a repository failed.
type Stage string

const (
	StageAcquire Stage = "acquire"
	StageAnalyze Stage = "analyze"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Outcome is the final record for one request. Exactly one Outcome exists per
// Request, regardless of how (or whether) its pipeline ran.
type Outcome struct {
	Repo   string `json:"repo"`
	URL    string `json:"url"`
	Status Status `json:"status"`

	// Results holds the analyzer findings on success.
	Results any `json:"results,omitempty"`

	// Stage and Error describe a failure.
	Stage Stage  `json:"stage,omitempty"`
	Error string `json:"error,omitempty"`

	// Workspace is the retained working copy path, set when a cloned copy was
	// left on disk (cleanup disabled or cleanup failed).
	Workspace string `json:"workspace,omitempty"`

	// CleanupWarning records an advisory cleanup failure. It never changes
	// Status.
	CleanupWarning string `json:"cleanup_warning,omitempty"`
}

// Failed reports whether the repository failed to scan. Cleanup warnings do
// not count as failures.
func (o Outcome) Failed() bool {
	return o.Status != StatusSuccess
}
