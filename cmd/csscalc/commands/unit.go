package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unit <value> <unit>",
		Aliases: []string{"u"},
		Short:   "Convert a length between px, rem and em",
		Long: "Convert a length between px, rem and em.\n" +
			"One rem and one em are 16px. The unit may be attached to the value (16px).",
		Example: "  csscalc unit 16 px\n  csscalc u 1.5rem",
		// Negative values such as -8 must reach the command as arguments.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			if len(args) == 0 {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			}
			return c.app.ConvertUnit(cmd.Context(), args)
		},
	}
}
