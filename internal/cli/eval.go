package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/radix/internal/rpn"
)

func newEvalCmd(a *app) *cobra.Command {
	var batch bool

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate expressions in prefix notation",
		Long: `Evaluate an arithmetic expression written in prefix (Polish) notation,
with the operators +, -, * and /. Quotients are truncated to --scale
digits after the radix point.

With --batch, expressions are read from standard input, one per line,
evaluated concurrently and printed in input order.

Examples:
    radix eval '* 10 + 1.23 4.56'
    radix eval --scale 15 -s 36 / azh.1y 55o
    printf '+ 1 2\n/ 1 3\n' | radix eval --batch --scale 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := rpn.New(a.config.NumeralSystem(), a.config.Scale)
			if !batch {
				if len(args) == 0 {
					return ErrUsage.New("no expression")
				}
				input := strings.Join(args, " ")
				z, err := ev.Evaluate(input)
				if err != nil {
					return err
				}
				a.logger.WithField("expression", input).Debugf("evaluated to %v", z)
				return render(cmd.OutOrStdout(), a.config.Output, newResult(input, z))
			}
			if len(args) > 0 {
				return ErrUsage.New("unexpected arguments with --batch: %v", args)
			}
			results, err := a.evalBatch(cmd.Context(), ev, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.config.Output, results...)
		},
	}
	cmd.Flags().BoolVarP(&batch, "batch", "b", false, "read expressions from standard input")
	return cmd
}

// evalBatch evaluates every non-blank line of r concurrently.
// The results are in input order. The first failure cancels the remaining
// evaluations.
func (a *app) evalBatch(ctx context.Context, ev *rpn.Evaluator, r io.Reader) ([]result, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expressions: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			z, err := ev.Evaluate(line)
			if err != nil {
				a.logger.WithError(err).WithFields(log.Fields{"line": i + 1, "expression": line}).Error("evaluation failed")
				return lineError(i+1, err)
			}
			results[i] = newResult(line, z)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.logger.WithField("count", len(results)).Debug("batch evaluated")
	return results, nil
}

// lineError prefixes err with the number of the input line it belongs to.
// The error classes of err are kept.
func lineError(line int, err error) error {
	class := errs.Class(fmt.Sprintf("line %d", line))
	return class.Wrap(err)
}
