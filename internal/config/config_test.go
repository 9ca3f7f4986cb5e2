package config

import (
	"strings"
	"testing"
)

func validInputConfig() *Config {
	cfg := New()
	cfg.Targeting.Input = "repos.txt"
	return cfg
}

func TestValidate_DefaultsWithInput(t *testing.T) {
	cfg := validInputConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Runtime.Concurrency != 1 {
		t.Errorf("default concurrency = %d, want 1", cfg.Runtime.Concurrency)
	}
	if cfg.Runtime.Cleanup {
		t.Error("cleanup should default to false")
	}
	if cfg.Output.ConsoleFormat != "text" {
		t.Errorf("default console format = %q, want text", cfg.Output.ConsoleFormat)
	}
}

func TestValidate_NoTarget(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no input source is provided")
	}
}

func TestValidate_InputAndDiscoveryMutuallyExclusive(t *testing.T) {
	cfg := validInputConfig()
	cfg.Targeting.Org = "acme"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when --input is combined with --org")
	}
}

func TestValidate_OrgUserMutuallyExclusive(t *testing.T) {
	cfg := New()
	cfg.Targeting.Org = "acme"
	cfg.Targeting.User = "octocat"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when --org and --user are both set")
	}
}

func TestValidate_ConcurrencyMustBePositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		cfg := validInputConfig()
		cfg.Runtime.Concurrency = n
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("concurrency=%d: expected error", n)
		}
		if !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("concurrency=%d: error %q should be classified as invalid configuration", n, err)
		}
	}
}

func TestValidate_AccountSelectorForms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"acme", "acme", true},
		{"https://github.com/acme", "acme", true},
		{"https://github.com/orgs/acme", "acme", true},
		{"github.com/users/octocat", "octocat", true},
		{"acme/widgets", "", false},
		{"https://gitlab.com/acme", "", false},
	}
	for _, c := range cases {
		cfg := New()
		cfg.Targeting.Org = c.raw
		err := cfg.Validate()
		if c.ok {
			if err != nil {
				t.Errorf("org %q: unexpected error: %v", c.raw, err)
				continue
			}
			if cfg.Targeting.Org != c.want {
				t.Errorf("org %q normalized to %q, want %q", c.raw, cfg.Targeting.Org, c.want)
			}
		} else if err == nil {
			t.Errorf("org %q: expected error", c.raw)
		}
	}
}

func TestValidate_ReposCommaSplitting(t *testing.T) {
	cfg := New()
	cfg.Targeting.Repos = []string{"acme/a,acme/b", " acme/c "}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Targeting.Repos) != 3 {
		t.Fatalf("repos = %v, want 3 entries", cfg.Targeting.Repos)
	}
}

func TestValidate_OutFormatInference(t *testing.T) {
	cases := []struct {
		out    string
		format string
		want   string
		ok     bool
	}{
		{"report.json", "", "json", true},
		{"report.ndjson", "", "ndjson", true},
		{"report.jsonl", "", "ndjson", true},
		{"report.txt", "", "", false},
		{"report", "", "", false},
		{"report.dat", "ndjson", "ndjson", true},
		{"report.json", "xml", "", false},
	}
	for _, c := range cases {
		cfg := validInputConfig()
		cfg.Output.Out = c.out
		cfg.Output.OutFormat = c.format
		err := cfg.Validate()
		if c.ok {
			if err != nil {
				t.Errorf("out=%q format=%q: unexpected error: %v", c.out, c.format, err)
				continue
			}
			if cfg.Output.OutFormat != c.want {
				t.Errorf("out=%q: format = %q, want %q", c.out, cfg.Output.OutFormat, c.want)
			}
		} else if err == nil {
			t.Errorf("out=%q format=%q: expected error", c.out, c.format)
		}
	}
}

func TestValidate_ConsoleFormat(t *testing.T) {
	cfg := validInputConfig()
	cfg.Output.ConsoleFormat = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported console format")
	}

	cfg = validInputConfig()
	cfg.Output.ConsoleFormat = " NDJSON "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Output.ConsoleFormat != "ndjson" {
		t.Errorf("console format not normalized: %q", cfg.Output.ConsoleFormat)
	}
}

func TestValidate_EmptyWorkspace(t *testing.T) {
	cfg := validInputConfig()
	cfg.Runtime.Workspace = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty workspace")
	}
}

func TestNeedsDiscovery(t *testing.T) {
	cfg := validInputConfig()
	if cfg.NeedsDiscovery() {
		t.Error("input-file config should not need discovery")
	}
	cfg = New()
	cfg.Targeting.Org = "acme"
	if !cfg.NeedsDiscovery() {
		t.Error("org config should need discovery")
	}
}
