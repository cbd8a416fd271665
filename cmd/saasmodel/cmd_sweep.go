package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/warp/startup-model/report"
	"github.com/warp/startup-model/sweep"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Simulate one company per value of a parameter",
		Long: fmt.Sprintf(`Run the scenario once for each value from --from up to (not including)
--to in steps of --step, changing only the --axis parameter. Every run
uses the same seed.

Axes: %s`, strings.Join(sweep.AxisNames(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, format, seed, err := globals(cmd)
			if err != nil {
				return err
			}
			base, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}

			axisName, _ := cmd.Flags().GetString("axis")
			axis, err := sweep.LookupAxis(axisName)
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetFloat64("from")
			to, _ := cmd.Flags().GetFloat64("to")
			step, _ := cmd.Flags().GetFloat64("step")
			values := sweep.Range(from, to, step)
			if len(values) == 0 {
				return fmt.Errorf("empty sweep: --from %v --to %v --step %v", from, to, step)
			}

			logger.Info("sweep", "axis", axis.Name, "points", len(values), "seed", seed)
			points, err := sweep.NewSweeper(logger).Run(base, axis, values, seed)
			if err != nil {
				return err
			}
			return report.WriteSweep(cmd.OutOrStdout(), axis.Name, points, format)
		},
	}
	cmd.Flags().String("axis", "survival-salary", "Parameter to sweep")
	cmd.Flags().Float64("from", 4000, "First value")
	cmd.Flags().Float64("to", 10000, "Stop before this value")
	cmd.Flags().Float64("step", 1000, "Increment")
	addScenarioFlags(cmd)
	return cmd
}
