package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"stackscan/internal/report"
	"stackscan/internal/scan"
)

type ConsoleSink struct {
	writer io.Writer
	format string // "text", "json", "ndjson"
	mu     sync.Mutex
	report *report.Report // for JSON aggregate output
}

func NewConsoleSink(w io.Writer, format string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}
	return &ConsoleSink{writer: w, format: format}
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "json":
		if rep, ok := v.(report.Report); ok {
			s.report = &rep
		}
		// Ignore per-repo traffic in JSON aggregate mode.
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case scan.Outcome:
			if err := encoder.Encode(eventFromOutcome(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	case "text":
		o, ok := v.(scan.Outcome)
		if !ok {
			// Ignore events and the aggregate in text mode.
			return nil
		}
		if _, err := fmt.Fprintln(s.writer, renderOutcomeLine(o)); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if s.report == nil {
			return encoder.Encode(report.Report{})
		}
		if err := encoder.Encode(*s.report); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}

func renderOutcomeLine(o scan.Outcome) string {
	if o.Failed() {
		line := fmt.Sprintf("[%s error] %s - %s", o.Stage, o.Repo, o.Error)
		if o.CleanupWarning != "" {
			line += fmt.Sprintf(" (cleanup: %s)", o.CleanupWarning)
		}
		return line
	}
	line := fmt.Sprintf("[ok] %s", o.Repo)
	if summary := summarizeResults(o.Results); summary != "" {
		line += " - " + summary
	}
	if o.CleanupWarning != "" {
		line += fmt.Sprintf(" (cleanup: %s)", o.CleanupWarning)
	}
	return line
}

// summarizeResults renders analyzer findings for humans. Findings are
// opaque to this package, so the category map shape is recovered through
// JSON; anything else is shown as compact JSON.
func summarizeResults(results any) string {
	if results == nil {
		return ""
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return ""
	}

	var categories map[string][]string
	if err := json.Unmarshal(raw, &categories); err == nil && len(categories) > 0 {
		keys := make([]string, 0, len(categories))
		for k := range categories {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(categories[k], ", ")))
		}
		return strings.Join(parts, "; ")
	}

	text := string(raw)
	if text == "null" || text == "{}" || text == "[]" {
		return ""
	}
	return text
}
