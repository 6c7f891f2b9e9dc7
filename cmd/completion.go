package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/timeutil"
	"github.com/xolan/calrange/internal/tui/ui"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for calrange.

Bash:
  source <(calrange completion bash)
  calrange completion bash > ~/.local/share/bash-completion/completions/calrange

Zsh:
  calrange completion zsh > "${fpath[1]}/_calrange"

Fish:
  calrange completion fish > ~/.config/fish/completions/calrange.fish

PowerShell:
  calrange completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		exitWithError(fmt.Sprintf("Unsupported shell '%s'", shell), nil, "Supported shells: bash, zsh, fish, powershell")
		return
	}

	if err != nil {
		exitWithError(fmt.Sprintf("Failed to generate %s completion", shell), err)
	}
}

func completeWeekday(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return weekdayNames(), cobra.ShellCompDirectiveNoFileComp
}

func completeOutput(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return config.OutputFormats(), cobra.ShellCompDirectiveNoFileComp
}

func completeKind(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"days", "week", "month", "month-extended"}, cobra.ShellCompDirectiveNoFileComp
}

func completeTheme(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return ui.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
}

func completeUnit(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	units := timeutil.Units()
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = string(u)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
