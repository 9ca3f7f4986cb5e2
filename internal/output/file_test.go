package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stackscan/internal/report"
)

func TestFileSink_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	outcomes := sampleOutcomes()
	for _, o := range outcomes {
		if err := s.Write(o); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := s.Write(report.Assemble(time.Now(), time.Second, outcomes)); err != nil {
		t.Fatalf("Write report: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded report.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Total != 2 {
		t.Errorf("Total = %d, want 2", decoded.Total)
	}
}

func TestFileSink_NDJSONInferredFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	for _, o := range sampleOutcomes() {
		if err := s.Write(o); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}

func TestFileSink_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}

func TestFileSink_UnknownExtension(t *testing.T) {
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "out.txt"), ""); err == nil {
		t.Fatal("expected error for uninferable format")
	}
}

func TestReportSink_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s, err := NewReportSink(path)
	if err != nil {
		t.Fatalf("NewReportSink: %v", err)
	}

	outcomes := sampleOutcomes()
	for _, o := range outcomes {
		if err := s.Write(o); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := s.Write(report.Assemble(time.Now(), 2*time.Second, outcomes)); err != nil {
		t.Fatalf("Write report: %v", err)
	}
	if err := s.Write(Event{Type: "run.finished", ExitCode: 2}); err != nil {
		t.Fatalf("Write event: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	md := string(data)
	for _, want := range []string{
		"# Tech Stack Scan Report",
		"| web-app | success |",
		"| broken | error |",
		"Exit code: 2",
		"| Next.js | 1 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestSummarizeResults(t *testing.T) {
	got := summarizeResults(map[string][]string{
		"languages": {"Go", "Python"},
		"databases": {"Redis"},
	})
	want := "databases: Redis; languages: Go, Python"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := summarizeResults(nil); got != "" {
		t.Errorf("nil results should summarize empty, got %q", got)
	}
	if got := summarizeResults(map[string][]string{}); got != "" {
		t.Errorf("empty results should summarize empty, got %q", got)
	}
}

func TestEmitSink_NDJSON(t *testing.T) {
	var sb strings.Builder
	s, err := NewEmitSink(&sb, "ndjson")
	if err != nil {
		t.Fatalf("NewEmitSink: %v", err)
	}
	if err := s.Write(sampleOutcomes()[0]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.Contains(sb.String(), `"repo.finished"`) {
		t.Errorf("expected streamed event, got %q", sb.String())
	}
}

func TestEmitSink_RejectsUnknownFormat(t *testing.T) {
	if _, err := NewEmitSink(&strings.Builder{}, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
