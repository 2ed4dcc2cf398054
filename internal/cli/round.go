package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// Rounding modes of the round command.
const (
	modeRound = "round"
	modeFloor = "floor"
	modeCeil  = "ceil"
	modeTrunc = "trunc"
	modeUp    = "up"
)

func newRoundCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "round <x>",
		Short: "Reduce the number of digits after the radix point",
		Long: `Reduce a number to --scale digits after the radix point.

Modes:
    round  round half up, except that an exact half of a negative number
           is truncated
    floor  largest integer not greater than x, --scale is ignored
    ceil   smallest integer not less than x, --scale is ignored
    trunc  drop the extra digits
    up     drop the extra digits and add one unit of the last kept digit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := radix.Parse(args[0], a.config.NumeralSystem())
			if err != nil {
				return err
			}
			z, err := round(x, mode, a.config.Scale)
			if err != nil {
				return err
			}
			a.logger.WithField("mode", mode).WithField("x", x).Debugf("rounded to %v", z)
			return render(cmd.OutOrStdout(), a.config.Output, newResult(x.String(), z))
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", modeRound, "rounding mode: round, floor, ceil, trunc or up")
	return cmd
}

func round(x radix.Number, mode string, scale int) (radix.Number, error) {
	switch mode {
	case modeRound:
		return x.Round(scale), nil
	case modeFloor:
		return x.Floor(), nil
	case modeCeil:
		return x.Ceil(), nil
	case modeTrunc:
		return x.Trunc(scale), nil
	case modeUp:
		return x.SetScale(scale, true), nil
	}
	return radix.Number{}, ErrUsage.New("unknown rounding mode %q", mode)
}
