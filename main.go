package main

import (
	"fmt"
	"os"

	"github.com/xolan/calrange/cmd"
	"github.com/xolan/calrange/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:]))
}

// run validates the configuration, then executes the CLI and returns the
// process exit code
func run(args []string) int {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Cannot determine config location\nDetails: %v\n", err)
		return 1
	}

	if _, err := config.LoadWithEnv(configPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Invalid configuration\nDetails: %v\n", err)
		_, _ = fmt.Fprintf(os.Stderr, "Hint: Fix or remove %s and check the CALRANGE_* environment variables\n", configPath)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(args); err != nil {
		return 1
	}
	return 0
}
