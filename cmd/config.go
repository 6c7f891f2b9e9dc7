package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration: the config file merged with
defaults and CALRANGE_* environment variables.

calrange works without a config file. Defaults:
  - week_start_day: monday
  - timezone: Local (system timezone)
  - default_output_format: text
  - log_level: warn

Environment overrides:
  CALRANGE_WEEK_START_DAY, CALRANGE_TIMEZONE, CALRANGE_OUTPUT_FORMAT,
  CALRANGE_LOG_LEVEL, CALRANGE_THEME

Examples:
  calrange config         Show all current settings
  calrange config init    Write a commented sample config file
  calrange config path    Print the config file location`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig(cmd)
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := loadServices(cmd)
		if !ok {
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, services.Config.GetPath())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig(cmd *cobra.Command) {
	services, ok := loadServices(cmd)
	if !ok {
		return
	}

	cfgSvc := services.Config
	cfg := cfgSvc.Get()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for calrange")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", cfgSvc.GetPath())
	if cfgSvc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Week Start Day:  %s (%s)\n", cfg.WeekStartDay, cfg.WeekStart())
	_, _ = fmt.Fprintf(deps.Stdout, "Timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "Output Format:   %s\n", cfg.OutputFormat())
	_, _ = fmt.Fprintf(deps.Stdout, "Log Level:       %s\n", cfg.LogLevel)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:           (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !cfgSvc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'calrange config init' to create a config file with every option.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample config file
func initConfig(cmd *cobra.Command) {
	services, ok := loadServices(cmd)
	if !ok {
		return
	}

	if err := services.Config.Init(); err != nil {
		exitWithError("Failed to create config file", err,
			"Edit the existing file or remove it first")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", services.Config.GetPath())
	_, _ = fmt.Fprintf(deps.Stdout, "Valid week_start_day values: %s\n", strings.ToLower(strings.Join(weekdayNames(), ", ")))
	_, _ = fmt.Fprintf(deps.Stdout, "Valid output formats: %s\n", strings.Join(config.OutputFormats(), ", "))
}
