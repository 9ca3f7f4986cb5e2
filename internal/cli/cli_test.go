package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRulesList_Quiet(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rulesListQuiet = false
	})

	rootCmd.SetArgs([]string{"rules", "list", "-q"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	for _, id := range []string{"go", "react", "postgresql", "terraform"} {
		found := false
		for _, line := range strings.Split(out, "\n") {
			if line == id {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("rule %q missing from quiet listing", id)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	SetBuildInfo("1.2.3", "abc123", "2025-06-01")
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "stackscan 1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("unexpected version output: %q", out)
	}
}
