package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stackscan/internal/analyze/techstack"
)

var rulesListQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list detection rules",
	Long: `Inspect the built-in technology detection rules.

Rules are evaluated against every acquired repository during scans
(see "stackscan scan --help").

Examples:
  # List all detection rules
  stackscan rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available detection rules",
	Long: `List all detection rules compiled into this build, in evaluation order.

Examples:
  stackscan rules list
  stackscan rules list -q
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range techstack.Catalog {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.ID)
			} else {
				printRule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

func printRule(w io.Writer, r techstack.Rule) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s", r.ID)
	fmt.Fprintf(w, " (%s): %s\n", r.Category, r.Name)

	var signals []string
	if len(r.Files) > 0 {
		signals = append(signals, fmt.Sprintf("files: %s", strings.Join(r.Files, ", ")))
	}
	if len(r.Extensions) > 0 {
		signals = append(signals, fmt.Sprintf("extensions: %s", strings.Join(r.Extensions, ", ")))
	}
	if len(r.Content) > 0 {
		files := make([]string, 0, len(r.Content))
		for _, cp := range r.Content {
			files = append(files, cp.File)
		}
		signals = append(signals, fmt.Sprintf("content of: %s", strings.Join(files, ", ")))
	}
	if len(r.Dependencies) > 0 {
		deps := make([]string, 0, len(r.Dependencies))
		for _, d := range r.Dependencies {
			deps = append(deps, fmt.Sprintf("%s:%s", d.Ecosystem, d.Name))
		}
		signals = append(signals, fmt.Sprintf("dependencies: %s", strings.Join(deps, ", ")))
	}
	if len(r.Dotenv) > 0 {
		signals = append(signals, fmt.Sprintf("env prefixes: %s", strings.Join(r.Dotenv, ", ")))
	}
	for _, s := range signals {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
}
