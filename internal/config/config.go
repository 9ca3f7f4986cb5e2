package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect scan
	// behavior, keep the CLI flags in internal/cli/scan.go in sync.
	Targeting Targeting
	Output    Output
	Runtime   Runtime
}

type Targeting struct {
	// Input is a path to a repository list file (see --input). Text format:
	// one identifier per line, '#' comments and blank lines ignored. JSON
	// format: array of {"name", "url"} objects.
	Input string

	// Org is a GitHub organization account to scan (name or URL; see --org).
	Org string

	// User is a GitHub user account to scan (name or URL; see --user).
	User string

	// Repos is an explicit list of repositories as OWNER/REPO (see --repos).
	// Values may be provided as repeated flags and/or comma-separated lists.
	Repos []string

	// MaxRepos caps how many repositories discovery may return (see
	// --max-repos). 0 means unlimited.
	MaxRepos int
}

type Output struct {
	// ConsoleFormat controls console rendering: text, json, or ndjson
	// (see --console-format).
	ConsoleFormat string

	// Out is a path to write the structured report to (see --out).
	Out string

	// OutFormat is the structured format for Out: json or ndjson. Empty means
	// inferred from the file extension.
	OutFormat string

	// Emit lists additional structured streams written to stdout: json or
	// ndjson (see --emit).
	Emit []string

	// Report is a path to write a Markdown run summary to (see --report).
	Report string

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Concurrency is the number of repository pipelines allowed to run at
	// once (see --concurrency). 1 means fully sequential execution.
	Concurrency int

	// Cleanup removes cloned working copies after each repository finishes
	// (see --cleanup). Pre-existing local paths are never removed.
	Cleanup bool

	// Workspace is the directory cloned working copies are created under
	// (see --workspace).
	Workspace string

	// CloneTimeout bounds a single clone attempt (see --clone-timeout).
	// 0 disables the per-clone timeout.
	CloneTimeout time.Duration

	// Verbose enables diagnostic logging (HTTP calls, per-stage detail).
	Verbose bool
}

func New() *Config {
	return &Config{
		Output: Output{
			ConsoleFormat: "text",
		},
		Runtime: Runtime{
			Concurrency:  1,
			Workspace:    filepath.Join(os.TempDir(), "stackscan-workspace"),
			CloneTimeout: 5 * time.Minute,
		},
	}
}

// Validate normalizes and checks the configuration. It is the fail-fast
// gate: a non-nil error here means no pipeline work may start.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	// Flatten comma-delimited values from repeated flags.
	c.Targeting.Repos = splitCommaList(c.Targeting.Repos)

	// Normalize account selectors.
	if c.Targeting.Org != "" {
		org, err := normalizeAccountSelector(c.Targeting.Org)
		if err != nil {
			return fmt.Errorf("invalid --org value: %w", err)
		}
		c.Targeting.Org = org
	}
	if c.Targeting.User != "" {
		user, err := normalizeAccountSelector(c.Targeting.User)
		if err != nil {
			return fmt.Errorf("invalid --user value: %w", err)
		}
		c.Targeting.User = user
	}

	// Targeting validation
	hasInput := c.Targeting.Input != ""
	hasDiscovery := c.Targeting.Org != "" || c.Targeting.User != "" || len(c.Targeting.Repos) > 0
	if !hasInput && !hasDiscovery {
		return errors.New("at least one of --input, --org, --user, or --repos must be provided")
	}
	if hasInput && hasDiscovery {
		return errors.New("--input and --org/--user/--repos are mutually exclusive")
	}
	if c.Targeting.Org != "" && c.Targeting.User != "" {
		return errors.New("--org and --user are mutually exclusive")
	}
	if c.Targeting.MaxRepos < 0 {
		return errors.New("--max-repos must be >= 0")
	}

	// Output validation
	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		return errors.New("--console-format must be one of: text, json, ndjson")
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for _, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v == "" {
			return errors.New("--emit must be one of: json, ndjson")
		}
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", v)
		}
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else {
			if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
				return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
			}
		}
	}

	// Runtime validation
	if c.Runtime.Concurrency <= 0 {
		return fmt.Errorf("invalid configuration: --concurrency must be >= 1, got %d", c.Runtime.Concurrency)
	}
	if c.Runtime.CloneTimeout < 0 {
		return errors.New("invalid configuration: --clone-timeout must be >= 0")
	}
	if strings.TrimSpace(c.Runtime.Workspace) == "" {
		return errors.New("invalid configuration: --workspace must not be empty")
	}

	return nil
}

// NeedsDiscovery reports whether the run resolves repositories via the GitHub
// API instead of an input file.
func (c *Config) NeedsDiscovery() bool {
	return c.Targeting.Input == ""
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func normalizeAccountSelector(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	// Accept a raw account name, or a GitHub URL like:
	//   https://github.com/<name>
	//   https://github.com/orgs/<name>
	//   https://github.com/users/<name>
	//   github.com/<name>
	if strings.HasPrefix(raw, "github.com/") || strings.HasPrefix(raw, "www.github.com/") {
		raw = "https://" + raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%q", raw)
		}
		host := strings.ToLower(u.Hostname())
		if host == "www.github.com" {
			host = "github.com"
		}
		if host != "github.com" {
			return "", fmt.Errorf("%q", raw)
		}
		parts := strings.FieldsFunc(strings.Trim(u.Path, "/"), func(r rune) bool { return r == '/' })
		if len(parts) == 0 {
			return "", fmt.Errorf("%q", raw)
		}
		if parts[0] == "orgs" || parts[0] == "users" {
			if len(parts) < 2 {
				return "", fmt.Errorf("%q", raw)
			}
			return parts[1], nil
		}
		return parts[0], nil
	}

	// Basic sanity: reject obvious repo-like inputs.
	if strings.Contains(raw, "/") {
		return "", fmt.Errorf("%q", raw)
	}
	return raw, nil
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
