package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

func newComplementCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "complement <x>",
		Short: "Print the radix complement of the digits of a number",
		Long: `Replace every digit d of x with base - 1 - d.
By default the complement is taken over all digits of x; --width pads
with zeros or drops high digits first. The sign and the radix point are
kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := radix.Parse(args[0], a.config.NumeralSystem())
			if err != nil {
				return err
			}
			z := x.Complement()
			if cmd.Flags().Changed("width") {
				z, err = x.ComplementWidth(width)
				if err != nil {
					return err
				}
			}
			return render(cmd.OutOrStdout(), a.config.Output, newResult(x.String(), z))
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "number of digits of the complement")
	return cmd
}
