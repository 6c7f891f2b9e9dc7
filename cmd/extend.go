package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/cli"
	"github.com/xolan/calrange/internal/service"
	"github.com/xolan/calrange/internal/timeutil"
)

// extendCmd represents the extend command
var extendCmd = &cobra.Command{
	Use:   "extend <date>...",
	Short: "Grow or trim a list of dates at either end",
	Long: `Extend an ascending list of dates by whole units.

Positive offsets add dates stepped from the first or last date, negative
offsets drop dates from that end. Offsets are always measured from the
original first and last date, so month steps from Jan 31 give Dec 31 and
Feb 29 rather than drifting.

Units: ` + strings.Join(timeutil.UnitLabels(), ", ") + `

Dates are YYYY-MM-DD, DD/MM/YYYY or YYYY-MM-DD HH:MM[:SS].

Examples:
  calrange extend 2020-01-01 2020-01-02 2020-01-03 --start 2
  calrange extend 2020-01-31 --unit month --start 2 --end 2
  calrange extend 2020-01-01 2020-01-02 2020-01-03 --end -2`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExtend(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(extendCmd)

	extendCmd.Flags().StringP("unit", "u", "day", "Unit to step by")
	extendCmd.Flags().Int("start", 0, "Units to add (>0) or remove (<0) before the first date")
	extendCmd.Flags().Int("end", 0, "Units to add (>0) or remove (<0) after the last date")

	_ = extendCmd.RegisterFlagCompletionFunc("unit", completeUnit)
}

// runExtend parses the dates and prints the extended list
func runExtend(cmd *cobra.Command, args []string) {
	services, ok := loadServices(cmd)
	if !ok {
		return
	}

	loc := services.Range.Location()
	dates := make([]time.Time, 0, len(args))
	for _, arg := range args {
		d, err := timeutil.ParseDateTime(arg, loc)
		if err != nil {
			exitWithError("Invalid date '"+arg+"'", err, "Use YYYY-MM-DD, DD/MM/YYYY or YYYY-MM-DD HH:MM")
			return
		}
		dates = append(dates, d)
	}

	unit, _ := cmd.Flags().GetString("unit")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")

	out, err := services.Range.Extend(service.ExtendRequest{
		Dates:       dates,
		Unit:        unit,
		StartOffset: start,
		EndOffset:   end,
	})
	if err != nil {
		exitWithRangeError("Failed to extend dates", err)
		return
	}

	withClock := false
	if u, err := timeutil.ParseUnit(unit); err == nil {
		withClock = !u.IsCalendar()
	}

	if err := cli.FormatDates(deps.Stdout, out, withClock); err != nil {
		exitWithError("Failed to write output", err)
	}
}
