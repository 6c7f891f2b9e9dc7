package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/cli"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/service"
	"github.com/xolan/calrange/internal/timeutil"
)

const rangeFlagsHelp = `
Shared flags:
  -d, --date DATE        Reference date (YYYY-MM-DD or DD/MM/YYYY), default today
  -w, --weekday DAY      Weekday weeks start on (monday..sunday, mon..sun, 1-7)
      --start-offset N   Add (N > 0) or remove (N < 0) days before the range
      --end-offset N     Add (N > 0) or remove (N < 0) days after the range
      --next N           Step N ranges forward
      --prev N           Step N ranges backward
  -o, --output FORMAT    text, json, yaml or grid`

// daysCmd represents the days command
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List consecutive days starting at a date",
	Long: `List N consecutive days starting on the reference date.

Examples:
  calrange days                       Today only
  calrange days -n 14                 Today and the next 13 days
  calrange days -n 3 -d 2020-02-27    2020-02-27 .. 2020-02-29
  calrange days -n 7 --next 1         The seven days after those
` + rangeFlagsHelp,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRange(cmd, daterange.KindDays)
	},
}

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "List the seven days of a week",
	Long: `List the week containing the reference date. Weeks start on the
configured week_start_day unless --weekday is given.

Examples:
  calrange week                            This week
  calrange week -d 2020-01-10              2020-01-06 .. 2020-01-12
  calrange week -w sunday --prev 1         Last week, Sunday to Saturday
  calrange week --start-offset 2 -o json   This week plus the two days before
` + rangeFlagsHelp,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRange(cmd, daterange.KindWeek)
	},
}

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "List the days of a month",
	Long: `List every day of the month containing the reference date.

With --extended the month is padded to whole weeks starting on the week
start day, the way a wall calendar shows it.

Examples:
  calrange month                       This month
  calrange month -d 2023-06-04 -x      2023-05-29 .. 2023-07-02
  calrange month -x -o grid --next 1   Next month as a calendar grid
` + rangeFlagsHelp,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		kind := daterange.KindMonthExact
		if extended, _ := cmd.Flags().GetBool("extended"); extended {
			kind = daterange.KindMonthExtended
		}
		runRange(cmd, kind)
	},
}

func init() {
	for _, c := range []*cobra.Command{daysCmd, weekCmd, monthCmd} {
		addRangeFlags(c)
		rootCmd.AddCommand(c)
	}

	daysCmd.Flags().IntP("count", "n", 1, "Number of days")
	monthCmd.Flags().BoolP("extended", "x", false, "Pad the month to whole weeks")
}

// addRangeFlags registers the flags shared by every range command
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "d", "", "Reference date (YYYY-MM-DD or DD/MM/YYYY), default today")
	cmd.Flags().StringP("weekday", "w", "", "Weekday weeks start on, default week_start_day")
	cmd.Flags().Int("start-offset", 0, "Days to add (>0) or remove (<0) before the range")
	cmd.Flags().Int("end-offset", 0, "Days to add (>0) or remove (<0) after the range")
	cmd.Flags().Int("next", 0, "Step this many ranges forward")
	cmd.Flags().Int("prev", 0, "Step this many ranges backward")
	cmd.Flags().StringP("output", "o", "", "Output format: text, json, yaml or grid")

	_ = cmd.RegisterFlagCompletionFunc("weekday", completeWeekday)
	_ = cmd.RegisterFlagCompletionFunc("output", completeOutput)
}

// runRange generates the range for kind from the command's flags,
// navigates it and prints it
func runRange(cmd *cobra.Command, kind daterange.Kind) {
	services, ok := loadServices(cmd)
	if !ok {
		return
	}

	req, ok := buildRangeRequest(cmd, kind, services.Range.Location())
	if !ok {
		return
	}

	format, ok := outputFormat(cmd, services.Config.Get())
	if !ok {
		return
	}

	next, _ := cmd.Flags().GetInt("next")
	prev, _ := cmd.Flags().GetInt("prev")
	if next < 0 || prev < 0 {
		exitWithError("--next and --prev must not be negative", nil)
		return
	}
	if next > 0 && prev > 0 {
		exitWithError("--next and --prev cannot be combined", nil, "Use one of them with the number of steps")
		return
	}

	r, err := services.Range.Generate(req)
	if err != nil {
		exitWithRangeError("Failed to generate "+strings.ToLower(kind.String())+" range", err)
		return
	}

	r, err = services.Range.Shift(r, next-prev)
	if err != nil {
		exitWithRangeError("Failed to navigate range", err)
		return
	}

	if err := cli.Render(deps.Stdout, r, format); err != nil {
		exitWithError("Failed to write output", err)
	}
}

// buildRangeRequest reads the shared flags into a request
func buildRangeRequest(cmd *cobra.Command, kind daterange.Kind, loc *time.Location) (service.RangeRequest, bool) {
	req := service.RangeRequest{Kind: kind}

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		ref, err := timeutil.ParseDate(dateStr, loc)
		if err != nil {
			exitWithError("Invalid date '"+dateStr+"'", err, "Use format YYYY-MM-DD or DD/MM/YYYY")
			return req, false
		}
		req.RefDate = &ref
	}

	if weekdayStr, _ := cmd.Flags().GetString("weekday"); weekdayStr != "" {
		wd, err := timeutil.ParseWeekday(weekdayStr)
		if err != nil {
			exitWithError("Invalid weekday '"+weekdayStr+"'", err)
			return req, false
		}
		req.Weekday = &wd
	}

	if kind == daterange.KindDays {
		req.DaysCount, _ = cmd.Flags().GetInt("count")
		// zero means "unset" to the service, so reject it here
		if req.DaysCount < 1 {
			exitWithRangeError("Invalid day count", daterange.InvalidParameter("daysCount", req.DaysCount, "a positive integer", ""))
			return req, false
		}
	}
	req.StartOffset, _ = cmd.Flags().GetInt("start-offset")
	req.EndOffset, _ = cmd.Flags().GetInt("end-offset")

	return req, true
}

// outputFormat returns --output, falling back to default_output_format
func outputFormat(cmd *cobra.Command, cfg config.Config) (string, bool) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return cfg.OutputFormat(), true
	}

	format = strings.ToLower(format)
	if !config.ValidOutputFormat(format) {
		exitWithError("Invalid output format '"+format+"'", nil, "Use one of: "+strings.Join(config.OutputFormats(), ", "))
		return "", false
	}
	return format, true
}
