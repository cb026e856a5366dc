package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/ticks"
	"github.com/matzehuels/chartaxes/pkg/errors"
)

const defaultTickTarget = 5

// ticksCommand creates the ticks command, a quick way to see what an
// auto-generated axis would show for a range.
func (c *CLI) ticksCommand() *cobra.Command {
	var (
		target int
		digits int
	)

	cmd := &cobra.Command{
		Use:   "ticks START END",
		Short: "Print the nice tick values covering a range",
		Example: `  chartaxes ticks 0 97
  chartaxes ticks -n 8 -- -0.3 1.7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseBound("START", args[0])
			if err != nil {
				return err
			}
			end, err := parseBound("END", args[1])
			if err != nil {
				return err
			}

			var auto ticks.Auto
			ticks.Generate(start, end, target, &auto)
			if auto.Len() == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no ticks for range [%g, %g]", start, end)
			}
			c.Logger.Debug("generated ticks", "count", auto.Len(), "step", auto.Step, "decimals", auto.Decimals)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ticksTable(&auto, axis.SimpleFormatter{DecimalDigits: digits}))
			fmt.Fprintln(out, StyleDim.Render("step")+" "+StyleNumber.Render(fmt.Sprint(auto.Step))+
				StyleDim.Render(" · decimals")+" "+StyleNumber.Render(fmt.Sprint(auto.Decimals)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "n", defaultTickTarget, "desired number of intervals")
	cmd.Flags().IntVar(&digits, "digits", -1, "fixed decimal digits for labels (negative: automatic)")

	return cmd
}

func parseBound(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be a number", name)
	}
	return v, nil
}
