package report

import (
	"testing"
	"time"

	"stackscan/internal/scan"
)

func TestAssemble_Counts(t *testing.T) {
	entries := []scan.Outcome{
		{Repo: "a", Status: scan.StatusSuccess},
		{Repo: "b", Status: scan.StatusError, Stage: scan.StageAcquire, Error: "clone-failed: boom"},
		{Repo: "c", Status: scan.StatusSuccess},
	}
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rep := Assemble(started, 1500*time.Millisecond, entries)
	if rep.Total != 3 || rep.Succeeded != 2 || rep.Failed != 1 {
		t.Fatalf("counts = %d/%d/%d, want 3/2/1", rep.Total, rep.Succeeded, rep.Failed)
	}
	if rep.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", rep.DurationMS)
	}
	if !rep.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", rep.StartedAt, started)
	}
	for i, e := range rep.Entries {
		if e.Repo != entries[i].Repo {
			t.Errorf("entry %d reordered: got %q want %q", i, e.Repo, entries[i].Repo)
		}
	}
}

func TestAssemble_AllFailed(t *testing.T) {
	entries := []scan.Outcome{
		{Repo: "a", Status: scan.StatusError, Stage: scan.StageAnalyze, Error: "boom"},
		{Repo: "b", Status: scan.StatusError, Stage: scan.StageAcquire, Error: "path-not-found: no"},
	}
	rep := Assemble(time.Now(), 0, entries)
	if rep.Succeeded != 0 || rep.Failed != 2 {
		t.Fatalf("got %d/%d, want 0/2", rep.Succeeded, rep.Failed)
	}
}

func TestAssemble_Empty(t *testing.T) {
	rep := Assemble(time.Now(), 0, nil)
	if rep.Total != 0 || rep.Succeeded != 0 || rep.Failed != 0 {
		t.Fatalf("expected zero counts, got %+v", rep)
	}
	if len(rep.Entries) != 0 {
		t.Fatalf("expected no entries")
	}
}
