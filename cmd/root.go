package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "calrange",
	Short: "Calendar-aligned date ranges for the command line",
	Long: `calrange prints calendar-aligned date ranges: a run of days, a week,
a month, or a month padded to whole weeks. Ranges can be grown or trimmed
at either end and stepped forward or backward.

Usage:
  calrange                               This week (same as 'calrange week')
  calrange days -n 10                    Ten days starting today
  calrange week -d 2020-01-10            The week of 2020-01-10
  calrange month -x -o grid              This month as a calendar grid
  calrange month --next 1                Next month
  calrange extend 2020-01-31 -u month --end 2
  calrange browse                        Interactive calendar browser
  calrange config                        Show configuration

Dates: YYYY-MM-DD or DD/MM/YYYY
Weekdays: monday..sunday, mon..sun or 1 (Monday) .. 7 (Sunday)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRange(cmd, daterange.KindWeek)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	addRangeFlags(rootCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"calrange version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command with the given arguments
func Execute(args []string) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)
	return rootCmd.Execute()
}

// weekdayNames lists Monday through Sunday
func weekdayNames() []string {
	names := make([]string, 0, 7)
	for d := timeutil.Monday; d <= timeutil.Sunday; d++ {
		names = append(names, d.String())
	}
	return names
}
