package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/warp/startup-model/founder"
	"github.com/warp/startup-model/report"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named starting scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, format, _, err := globals(cmd)
			if err != nil {
				return err
			}
			presets := founder.Presets()
			out := cmd.OutOrStdout()

			if format == report.FormatJSON {
				type entry struct {
					Name        string           `json:"name"`
					Description string           `json:"description"`
					Scenario    founder.Scenario `json:"scenario"`
				}
				entries := make([]entry, len(presets))
				for i, p := range presets {
					entries[i] = entry{p.Name, p.Description, p.Scenario}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, p := range presets {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, report.NewAmount(p.Scenario.State.Capital).Humanize(), p.Description)
			}
			return tw.Flush()
		},
	}
}
