/*
main.go - saasmodel command entry point

PURPOSE:
  Runs the single-founder SaaS model from the command line and writes the
  results to stdout as an aligned table, CSV or JSON.

COMMANDS:
  run       Simulate one company and print it month by month
  sweep     Simulate one company per value of a parameter
  presets   List the named starting scenarios
  version   Print version information

GLOBAL FLAGS:
  --log-level  error, warn, info or debug (default: info). Logs go to stderr.
  --format     pretty, csv or json (default: pretty)
  --seed       Random seed (default: 1). Same seed, same run.

EXAMPLES:
  # Default company, five years
  saasmodel run

  # Survival salary from 4k to 9k on the one-business preset, for plotting
  saasmodel sweep --preset one-business --axis survival-salary \
      --from 4000 --to 10000 --step 1000 --format csv > salaries.csv

SEE ALSO:
  - flags.go: Scenario flags
  - founder/runner.go: The monthly loop
  - report/writer.go: Output formats
*/
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/warp/startup-model/logging"
	"github.com/warp/startup-model/report"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saasmodel",
		Short: "Month-by-month model of a single-founder SaaS business",
		Long: `saasmodel simulates five years of a bootstrapped SaaS company run by
one founder: building the product, finding product/market fit, growing a
sales channel and living off what the subscribers pay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().String("format", string(report.FormatPretty), "Output format (pretty, csv, json)")
	rootCmd.PersistentFlags().Uint64("seed", 1, "Random seed")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

// globals reads the persistent flags shared by every command.
func globals(cmd *cobra.Command) (*slog.Logger, report.Format, uint64, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logger := logging.NewLogger(level, cmd.ErrOrStderr())

	name, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, "", 0, err
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	return logger, format, seed, nil
}
