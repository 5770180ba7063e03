package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ripple/internal/app"
	"go.trai.ch/ripple/internal/core/domain"
)

func (c *CLI) newAffectedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affected",
		Short: "List packages affected by changes against the baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseline, _ := cmd.Flags().GetString("baseline")
			asJSON, _ := cmd.Flags().GetBool("json")
			writePath, _ := cmd.Flags().GetString("write")

			result, report, err := c.app.Affected(cmd.Context(), ".", app.RunOptions{
				Baseline:   baseline,
				ReportPath: writePath,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringP("baseline", "b", "", "Git ref to diff against (overrides the configured baseline)")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().String("write", "", "Write the JSON report to the given path")
	return cmd
}

// printResult renders the human-readable listing. An empty result prints
// nothing: no affected packages is the quiet, successful case.
func printResult(cmd *cobra.Command, result *domain.AffectedResult) {
	if result.Empty() {
		return
	}

	out := cmd.OutOrStdout()
	if len(result.Changed) > 0 {
		_, _ = fmt.Fprintln(out, "changed:")
		for _, p := range result.Changed {
			_, _ = fmt.Fprintf(out, "  %s\n", p.ID)
		}
	}
	if len(result.Dependents) > 0 {
		_, _ = fmt.Fprintln(out, "dependents:")
		for _, p := range result.Dependents {
			_, _ = fmt.Fprintf(out, "  %s\n", p.ID)
		}
	}
}
