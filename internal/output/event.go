package output

import "stackscan/internal/scan"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - repo.finished
// - run.finished
//
// JSON mode remains an aggregate: the final report document written once.
type Event struct {
	Type string `json:"type"`
	Repo string `json:"repo,omitempty"`
	*scan.Outcome
	Repos    int `json:"repos,omitempty"`
	ExitCode int `json:"exit_code,omitempty"`
}

func eventFromOutcome(o scan.Outcome) Event {
	return Event{Type: "repo.finished", Repo: o.Repo, Outcome: &o}
}
