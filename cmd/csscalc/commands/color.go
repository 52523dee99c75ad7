package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "color <#RRGGBB | H S% L%>",
		Aliases: []string{"c"},
		Short:   "Convert a color between HEX and HSL",
		Long: "Convert a #RRGGBB color to HSL, or an HSL triple to HEX.\n" +
			"Quote HEX colors so the shell does not read # as a comment.",
		Example: "  csscalc color '#ff0000'\n  csscalc c 120 100% 25%",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			if len(args) == 0 {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			}
			return c.app.ConvertColor(cmd.Context(), args)
		},
	}
}
