package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <x>",
		Short: "Convert a number to another numeral system",
		Long: `Convert a number from the --system numeral system to the --to one.
The result keeps the number of digits after the radix point of x; any
further digits are truncated.

Examples:
    radix convert 161230291374537 --to 36
    radix convert -s 36 1a.z --to 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := radix.Lookup(to)
			if err != nil {
				return err
			}
			x, err := radix.Parse(args[0], a.config.NumeralSystem())
			if err != nil {
				return err
			}
			z := x.ConvertTo(target)
			a.logger.WithField("from", x.System().Base()).WithField("to", target.Base()).Debugf("converted %v to %v", x, z)
			return render(cmd.OutOrStdout(), a.config.Output, newResult(x.String(), z))
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "10", "target numeral system: 8, 10, 16 or 36")
	return cmd
}
