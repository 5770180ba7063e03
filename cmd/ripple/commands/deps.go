package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <package>...",
		Short: "List the transitive dependencies of the given packages",
		Long: `List the transitive dependency closure of the given packages, the
packages themselves included. References take the form "name",
"name@vN" or "name@latest"; a bare name means the latest line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := c.app.Dependencies(cmd.Context(), ".", args)
			if err != nil {
				return err
			}
			for _, p := range pkgs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			}
			return nil
		},
	}
}
