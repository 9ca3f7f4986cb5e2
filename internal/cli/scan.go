package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stackscan/internal/analyze/techstack"
	"stackscan/internal/config"
	"stackscan/internal/engine"
	"stackscan/internal/flags"
	gh "stackscan/internal/github"
)

var cfg = config.New()

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a set of repositories and report their tech stacks",
	Long: `Scan a set of repositories: acquire each one (clone, or open a local
path), detect its technology stack, and assemble one report covering every
requested repository in request order.

Targeting:
	Repositories come from exactly one of:
	- --input: a file listing clone URLs or local paths (text lines or a JSON array)
	- --org / --user: discover repositories of a GitHub account
	- --repos: explicit OWNER/REPO selectors resolved via the GitHub API

	Discovery targeting needs a GitHub token (GITHUB_TOKEN, or GitHub CLI auth
	via gh auth login). Scanning from --input works without one.

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write the aggregate JSON report or an NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --report: write a Markdown summary to a file
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events
	with a "type" field (run.started, repo.finished, run.finished).

Exit codes:
	0 = clean run, every repository scanned
	2 = partial failure (some repositories errored)
	3 = fatal error (scan did not run)

Examples:
  # Scan a list of clone URLs with 8 workers, removing clones afterwards
  stackscan scan --input repos.txt --concurrency 8 --cleanup

  # Scan an organization and keep a machine-readable report
  export GITHUB_TOKEN="<your_token>"
  stackscan scan --org my-org --out report.json

  # Stream machine-readable events to stdout
  stackscan scan --input repos.txt --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		ctx := context.Background()

		var client *gh.Client
		if cfg.NeedsDiscovery() {
			token, _, err := gh.ResolveAuthToken(ctx, "")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to resolve GitHub auth token: %v\n", err)
				os.Exit(3)
			}
			if strings.TrimSpace(token) == "" {
				fmt.Fprintln(os.Stderr, "Error: GitHub auth token is required for --org/--user/--repos (set GITHUB_TOKEN or run 'gh auth login')")
				os.Exit(3)
			}
			client, err = gh.NewClient(ctx, token, gh.WithVerbose(cfg.Runtime.Verbose, nil))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to create GitHub client: %v\n", err)
				os.Exit(3)
			}
		}

		eng := engine.NewEngine(client, techstack.New())
		os.Exit(eng.Run(ctx, cfg))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Targeting
	scanCmd.Flags().StringVar(&cfg.Targeting.Input, flags.FlagInput, "", "File listing repositories to scan: clone URLs or local paths, one per line, or a JSON array")
	scanCmd.Flags().StringVar(&cfg.Targeting.Org, flags.FlagOrg, "", "GitHub organization account to scan (name or URL)")
	scanCmd.Flags().StringVar(&cfg.Targeting.User, flags.FlagUser, "", "GitHub user account to scan (name or URL)")
	scanCmd.Flags().StringSliceVar(&cfg.Targeting.Repos, flags.FlagRepos, nil, "Repositories to scan as OWNER/REPO (repeatable; comma-separated accepted)")
	scanCmd.Flags().IntVar(&cfg.Targeting.MaxRepos, flags.FlagMaxRepos, 0, "Maximum number of repositories to scan (0 = unlimited)")

	// Output
	scanCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	scanCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	scanCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	scanCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	scanCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	scanCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")

	// Runtime
	scanCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Concurrent repository pipelines (must be >= 1)")
	scanCmd.Flags().BoolVar(&cfg.Runtime.Cleanup, flags.FlagCleanup, false, "Remove cloned working copies after each repository finishes")
	scanCmd.Flags().StringVar(&cfg.Runtime.Workspace, flags.FlagWorkspace, cfg.Runtime.Workspace, "Directory cloned working copies are created under")
	scanCmd.Flags().DurationVar(&cfg.Runtime.CloneTimeout, flags.FlagCloneTimeout, cfg.Runtime.CloneTimeout, "Timeout for a single clone attempt")
}
