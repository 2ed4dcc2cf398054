package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <x> <op> <y>",
		Short: "Apply a binary operator to two numbers",
		Long: `Apply one of the operators +, -, * (or x) and / to two numbers.
The quotient is truncated to --scale digits after the radix point.
Negative operands must follow "--".

Examples:
    radix calc 123.45 / 7 --scale 5
    radix calc -s 36 azh.1y - 55o
    radix calc -- -2.5 x 4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := a.config.NumeralSystem()
			x, err := radix.Parse(args[0], sys)
			if err != nil {
				return err
			}
			y, err := radix.Parse(args[2], sys)
			if err != nil {
				return err
			}
			z, err := calc(x, args[1], y, a.config.Scale)
			if err != nil {
				a.logger.WithError(err).WithFields(log.Fields{"x": x, "op": args[1], "y": y}).Error("calculation failed")
				return err
			}
			a.logger.WithFields(log.Fields{"x": x, "op": args[1], "y": y, "result": z}).Debug("calculated")
			return render(cmd.OutOrStdout(), a.config.Output, newResult(fmt.Sprintf("%v %v %v", x, args[1], y), z))
		},
	}
}

// calc applies the operator op to x and y.
func calc(x radix.Number, op string, y radix.Number, scale int) (radix.Number, error) {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*", "x":
		return x.Mul(y)
	case "/":
		return x.Quo(y, scale)
	}
	return radix.Number{}, ErrUsage.New("unknown operator %q, valid operators are +, -, *, x and /", op)
}
