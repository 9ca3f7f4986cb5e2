// Package techstack detects the technologies used by a repository from its
// marker files, manifests, and content patterns.
package techstack

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"stackscan/internal/scan"
)

// Findings maps a category label to the technology names detected for it,
// in catalog order. Empty categories are omitted.
type Findings map[string][]string

// categoryLabels maps a rule category to its report label and fixes the
// label set. Categories keep catalog order inside each label.
var categoryLabels = map[string]string{
	"language":     "languages",
	"ui_framework": "ui_frameworks",
	"framework":    "frameworks",
	"ui":           "ui_libraries",
	"ssg":          "site_generators",
	"builder":      "build_tools",
	"linter":       "linters",
	"test":         "testing",
	"validation":   "validation",
	"orm":          "data_access",
	"ci":           "ci_cd",
	"cloud":        "cloud",
	"hosting":      "hosting",
	"iac":          "infrastructure",
	"db":           "databases",
	"queue":        "messaging",
	"storage":      "storage",
	"ai":           "ai",
	"analytics":    "analytics",
	"monitoring":   "monitoring",
	"auth":         "auth",
	"payment":      "payments",
}

// Analyzer inspects a working copy against the rule catalog.
type Analyzer struct {
	rules []Rule
}

func New() *Analyzer {
	return &Analyzer{rules: Catalog}
}

// Rules returns the analyzer's catalog in evaluation order.
func (a *Analyzer) Rules() []Rule {
	return a.rules
}

// Analyze implements scan.Analyzer.
func (a *Analyzer) Analyze(ctx context.Context, wc scan.WorkingCopy) (any, error) {
	return a.AnalyzeFS(ctx, osfs.New(wc.Path))
}

// AnalyzeFS runs detection over any billy filesystem rooted at a repository.
func (a *Analyzer) AnalyzeFS(ctx context.Context, fs billy.Filesystem) (Findings, error) {
	ix, err := newIndex(fs)
	if err != nil {
		return nil, fmt.Errorf("indexing working copy: %w", err)
	}
	m := extractManifests(ix)

	findings := make(Findings)
	for _, rule := range a.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !matches(rule, ix, m) {
			continue
		}
		label, ok := categoryLabels[rule.Category]
		if !ok {
			label = rule.Category
		}
		findings[label] = appendUnique(findings[label], rule.Name)
	}
	return findings, nil
}

func matches(rule Rule, ix *index, m *manifests) bool {
	for _, marker := range rule.Files {
		if ix.has(marker) {
			return true
		}
	}
	for _, ext := range rule.Extensions {
		if ix.hasExt(ext) {
			return true
		}
	}
	for _, cp := range rule.Content {
		content, ok := ix.read(cp.File)
		if !ok {
			continue
		}
		for _, pattern := range cp.Patterns {
			if strings.Contains(strings.ToLower(content), strings.ToLower(pattern)) {
				return true
			}
		}
	}
	for _, dep := range rule.Dependencies {
		if m.has(dep) {
			return true
		}
	}
	for _, prefix := range rule.Dotenv {
		for _, name := range m.env {
			if strings.HasPrefix(name, prefix) {
				return true
			}
		}
	}
	return false
}

func appendUnique(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}

