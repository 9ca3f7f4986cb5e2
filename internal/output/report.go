package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"stackscan/internal/report"
	"stackscan/internal/scan"
)

// ReportSink renders a human-readable Markdown summary of the run.
type ReportSink struct {
	path         string
	file         *os.File
	mu           sync.Mutex
	outcomes     []scan.Outcome
	report       *report.Report
	exitCode     int
	haveExitCode bool
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{path: path, file: f}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t := v.(type) {
	case scan.Outcome:
		s.outcomes = append(s.outcomes, t)
	case report.Report:
		s.report = &t
	case Event:
		if t.Type == "run.finished" {
			s.exitCode = t.ExitCode
			s.haveExitCode = true
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("# Tech Stack Scan Report\n\n")

	if s.report != nil {
		b.WriteString(fmt.Sprintf("- Started: %s\n", s.report.StartedAt.Format(time.RFC3339)))
		b.WriteString(fmt.Sprintf("- Duration: %dms\n", s.report.DurationMS))
		b.WriteString(fmt.Sprintf("- Repositories: %d (%d succeeded, %d failed)\n",
			s.report.Total, s.report.Succeeded, s.report.Failed))
	}
	if s.haveExitCode {
		b.WriteString(fmt.Sprintf("- Exit code: %d\n", s.exitCode))
	}

	b.WriteString("\n## Results\n\n")
	b.WriteString("| Repository | Status | Detail |\n")
	b.WriteString("|---|---|---|\n")
	for _, o := range s.outcomes {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			mdEscape(o.Repo), string(o.Status), mdEscape(outcomeDetail(o))))
	}

	if freq := technologyFrequency(s.outcomes); len(freq) > 0 {
		b.WriteString("\n## Technologies\n\n")
		b.WriteString("| Technology | Repositories |\n")
		b.WriteString("|---|---|\n")
		for _, tf := range freq {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", mdEscape(tf.name), tf.count))
		}
	}

	_, writeErr := s.file.WriteString(b.String())
	if closeErr := s.file.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	return writeErr
}

func outcomeDetail(o scan.Outcome) string {
	if o.Failed() {
		detail := fmt.Sprintf("%s: %s", o.Stage, o.Error)
		if o.CleanupWarning != "" {
			detail += fmt.Sprintf(" (cleanup: %s)", o.CleanupWarning)
		}
		return detail
	}
	return summarizeResults(o.Results)
}

type techFreq struct {
	name  string
	count int
}

// technologyFrequency counts, per technology, how many successful repos
// reported it. Findings travel as opaque values, so the category map shape
// is recovered through JSON the same way the console does.
func technologyFrequency(outcomes []scan.Outcome) []techFreq {
	counts := make(map[string]int)
	for _, o := range outcomes {
		if o.Failed() || o.Results == nil {
			continue
		}
		raw, err := json.Marshal(o.Results)
		if err != nil {
			continue
		}
		var categories map[string][]string
		if err := json.Unmarshal(raw, &categories); err != nil {
			continue
		}
		for _, names := range categories {
			for _, name := range names {
				counts[name]++
			}
		}
	}

	freq := make([]techFreq, 0, len(counts))
	for name, count := range counts {
		freq = append(freq, techFreq{name: name, count: count})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].count != freq[j].count {
			return freq[i].count > freq[j].count
		}
		return freq[i].name < freq[j].name
	})
	return freq
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
