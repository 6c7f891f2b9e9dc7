package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/daterange"
	calog "github.com/xolan/calrange/internal/log"
	"github.com/xolan/calrange/internal/service"
)

// exitWithError prints "Error: msg", the underlying error and any hints,
// then exits with status 1.
func exitWithError(msg string, err error, hints ...string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	for _, hint := range hints {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// rangeErrorHint explains a rejected generation or navigation call.
func rangeErrorHint(err error) string {
	var rangeErr *daterange.Error
	if !errors.As(err, &rangeErr) {
		return ""
	}

	switch {
	case errors.Is(err, daterange.ErrRangeExceeded):
		return "Negative offsets must leave at least one date in the range"
	case errors.Is(err, daterange.ErrEmptyRange):
		return "Generate a range before navigating"
	}
	return fmt.Sprintf("%s should be %s", rangeErr.Param, rangeErr.Expected)
}

// exitWithRangeError reports a daterange error with its hint.
func exitWithRangeError(msg string, err error) {
	if hint := rangeErrorHint(err); hint != "" {
		exitWithError(msg, err, hint)
		return
	}
	exitWithError(msg, err)
}

// loadServices builds the service layer and attaches a logger at the
// configured level, or debug when --verbose is set. Logs are JSON lines when
// the command prints json or yaml. Reports false after printing the error.
func loadServices(cmd *cobra.Command) (*service.Services, bool) {
	services, err := deps.Services()
	if err != nil {
		exitWithError("Failed to load configuration", err,
			"Run 'calrange config path' to locate the config file and check its values")
		return nil, false
	}

	level := services.Config.Get().LogLevel
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		level = "debug"
	}
	if structuredOutput(cmd, services.Config.Get()) {
		services.Range.SetLogger(calog.NewJSON(deps.Stderr, level))
	} else {
		services.Range.SetLogger(calog.New(deps.Stderr, level))
	}

	return services, true
}

// structuredOutput reports whether cmd writes json or yaml, from --output
// when the command has it and default_output_format otherwise
func structuredOutput(cmd *cobra.Command, cfg config.Config) bool {
	format := cfg.OutputFormat()
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Value.String() != "" {
		format = strings.ToLower(flag.Value.String())
	}
	return format == config.FormatJSON || format == config.FormatYAML
}
