/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jt05610/petri-inhibitor/examples/divider"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrDivisor = errors.New("divisor must be positive")

func parseOperands(args []string) (int, int, error) {
	ops := make([]int, 2)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, fmt.Errorf("operand %q: %w", a, err)
		}
		if n < 0 {
			return 0, 0, fmt.Errorf("operand %d must not be negative", n)
		}
		ops[i] = n
	}
	if ops[1] == 0 {
		return 0, 0, ErrDivisor
	}
	return ops[0], ops[1], nil
}

// divideCmd represents the divide command
var divideCmd = &cobra.Command{
	Use:   "divide <dividend> <divisor>",
	Short: "Divide two natural numbers with the divider net",
	Long: `Divide two natural numbers by running the divider net until no transition
is enabled. The quotient is read from res and the remainder from sto.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opa, opb, err := parseOperands(args)
		if err != nil {
			return err
		}
		res, err := drive(cmd.Context(), logger, divider.Net(), divider.InitialMarking(opa, opb), maxSteps, nil)
		if err != nil {
			logger.Error("divide failed", zap.Int("dividend", opa), zap.Int("divisor", opb), zap.Error(err))
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d / %d = %d remainder %d\n", opa, opb, res.Marking.Tokens(divider.Res), res.Marking.Tokens(divider.Sto))
		fmt.Fprintf(out, "%d firings, final marking %s\n", res.Steps, res.Marking)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(divideCmd)
}
