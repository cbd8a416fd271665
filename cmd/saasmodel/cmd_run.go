package main

import (
	"github.com/spf13/cobra"
	"github.com/warp/startup-model/founder"
	"github.com/warp/startup-model/report"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one company",
		Long: `Simulate one company from a preset, with any scenario flag overriding
the preset's value, and print every month plus a summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, format, seed, err := globals(cmd)
			if err != nil {
				return err
			}
			scenario, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}

			run, err := founder.NewRunner(logger).Run(scenario, seed)
			if err != nil {
				return err
			}
			return report.WriteRun(cmd.OutOrStdout(), run, format)
		},
	}
	addScenarioFlags(cmd)
	return cmd
}
