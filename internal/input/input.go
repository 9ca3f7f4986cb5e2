// Package input parses repository list files into scan requests.
//
// Two formats are accepted:
//   - a JSON array of {"name": ..., "url": ...} objects (name optional)
//   - plain text with one identifier per line; blank lines and lines starting
//     with '#' are ignored
//
// Entry order is significant: the final report preserves it.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stackscan/internal/scan"
)

type jsonEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ParseFile reads and parses a repository list file.
func ParseFile(path string) ([]scan.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return Parse(string(raw))
}

// Parse parses repository list content. Content starting with '[' is treated
// as a JSON array; anything else as line-oriented text.
func Parse(content string) ([]scan.Request, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "[") {
		return parseJSON(trimmed)
	}
	return parseLines(trimmed), nil
}

func parseJSON(raw string) ([]scan.Request, error) {
	var entries []jsonEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("parse JSON input: %w", err)
	}

	reqs := make([]scan.Request, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.URL) == "" {
			return nil, fmt.Errorf("parse JSON input: entry %d has no url", i)
		}
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = NameFromURL(e.URL)
		}
		reqs = append(reqs, scan.Request{Name: name, URL: strings.TrimSpace(e.URL)})
	}
	return reqs, nil
}

func parseLines(raw string) []scan.Request {
	var reqs []scan.Request
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reqs = append(reqs, scan.Request{Name: NameFromURL(line), URL: line})
	}
	return reqs
}

// NameFromURL derives a display name from a repository identifier: the last
// path segment with any trailing "/" and ".git" stripped.
func NameFromURL(url string) string {
	cleaned := strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(url), "/"), ".git")
	if idx := strings.LastIndexAny(cleaned, "/\\"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	// scp-style remotes (git@host:owner/repo) reduce to the repo segment
	// above; a bare "host:owner" remainder still carries a colon.
	if idx := strings.LastIndex(cleaned, ":"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}
