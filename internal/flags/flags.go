// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants helps avoid drift between Cobra flag
// wiring and other code paths that reference flags by name.
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Targeting.Org, flags.FlagOrg, "", "...")
//	arg := "--" + flags.FlagOrg
package flags

const (
	// Targeting
	FlagInput    = "input"
	FlagOrg      = "org"
	FlagUser     = "user"
	FlagRepos    = "repos"
	FlagMaxRepos = "max-repos"

	// Output
	FlagConsoleFormat = "console-format"
	FlagReport        = "report"
	FlagOut           = "out"
	FlagOutFormat     = "out-format"
	FlagEmit          = "emit"
	FlagNoConsole     = "no-console"

	// Runtime
	FlagConcurrency  = "concurrency"
	FlagCleanup      = "cleanup"
	FlagWorkspace    = "workspace"
	FlagCloneTimeout = "clone-timeout"
)
