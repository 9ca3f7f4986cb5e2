package main

import (
	"github.com/joho/godotenv"

	"stackscan/internal/cli"
)

// These variables are populated by the build via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Optional .env with GITHUB_TOKEN and friends; absence is fine.
	_ = godotenv.Load()

	cli.SetBuildInfo(version, commit, date)
	cli.Execute()
}
