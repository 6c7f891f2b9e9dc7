package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/daterange"
	calog "github.com/xolan/calrange/internal/log"
	"github.com/xolan/calrange/internal/tui"
	"github.com/xolan/calrange/internal/tui/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse ranges in an interactive calendar",
	Long: `Launch the interactive calendar browser.

The browser starts on the range given by the flags and shows it as a
calendar grid with the reference day highlighted.

Keyboard shortcuts:
  n/p or arrows   Next / previous range
  t               Back to today
  d/w/m/e         Days, week, month, month grid
  + / -           Grow / shrink the end
  [ / ]           Grow / shrink the start
  0               Reset offsets
  T               Next theme (saved to the config file)
  ?               Full help
  q               Quit

Examples:
  calrange browse                     This week
  calrange browse -k month-extended   This month as a wall calendar
  calrange browse -k days -n 14       Two weeks starting today`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse(cmd)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("kind", "k", "week", "Range kind: days, week, month, month-extended")
	browseCmd.Flags().StringP("date", "d", "", "Reference date (YYYY-MM-DD or DD/MM/YYYY), default today")
	browseCmd.Flags().StringP("weekday", "w", "", "Weekday weeks start on, default week_start_day")
	browseCmd.Flags().IntP("count", "n", tui.DefaultDaysCount, "Number of days for days ranges")
	browseCmd.Flags().Int("start-offset", 0, "Days to add (>0) or remove (<0) before the range")
	browseCmd.Flags().Int("end-offset", 0, "Days to add (>0) or remove (<0) after the range")
	browseCmd.Flags().String("theme", "", "Theme for this session, default the configured theme")

	_ = browseCmd.RegisterFlagCompletionFunc("kind", completeKind)
	_ = browseCmd.RegisterFlagCompletionFunc("weekday", completeWeekday)
	_ = browseCmd.RegisterFlagCompletionFunc("theme", completeTheme)
}

// runBrowse builds the starting range and hands it to the browser
func runBrowse(cmd *cobra.Command) {
	services, ok := loadServices(cmd)
	if !ok {
		return
	}
	// the browser owns the terminal
	services.Range.SetLogger(calog.Nop())

	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := daterange.ParseKind(kindStr)
	if err != nil {
		exitWithError("Invalid kind '"+kindStr+"'", err, "Use one of: days, week, month, month-extended")
		return
	}

	req, ok := buildRangeRequest(cmd, kind, services.Range.Location())
	if !ok {
		return
	}
	if kind != daterange.KindDays {
		req.DaysCount, _ = cmd.Flags().GetInt("count")
	}

	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		if !ui.NewThemeProvider("").SetTheme(theme) {
			exitWithError("Unknown theme '"+theme+"'", nil, "Press T in the browser to cycle through the bundled themes")
			return
		}
		cfg := services.Config.Get()
		cfg.Theme = theme
		services.Config.Set(cfg)
	}

	if err := deps.Browse(services, req); err != nil {
		exitWithRangeError("Failed to run browser", err)
	}
}
