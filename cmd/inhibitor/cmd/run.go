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
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/jt05610/petri-inhibitor"
	"github.com/jt05610/petri-inhibitor/petrifile"
	"github.com/jt05610/petri-inhibitor/petrifile/v1/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile string
	until     string
)

func tokenEnv(places []string, m petri.Marking[string]) map[string]interface{} {
	env := make(map[string]interface{}, len(places))
	for _, p := range places {
		env[p] = m.Tokens(p)
	}
	return env
}

// untilStop compiles a boolean expression over place names into a stop condition.
func untilStop(src string, places []string) (Stop[string], error) {
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(tokenEnv(places, nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("until: %w", err)
	}
	return func(m petri.Marking[string]) (bool, error) {
		return runBool(program, tokenEnv(places, m))
	}, nil
}

func runBool(program *vm.Program, env map[string]interface{}) (bool, error) {
	ret, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	return ret.(bool), nil
}

func loadPetrifile(cmd *cobra.Command) (*petrifile.Petrifile, *petri.Net[string], error) {
	if inputFile == "" {
		return nil, nil, fmt.Errorf("an input file is required (-i)")
	}
	f, err := petrifile.LoadFile(cmd.Context(), &yaml.Service{}, inputFile)
	if err != nil {
		return nil, nil, err
	}
	n, err := f.Net()
	if err != nil {
		return nil, nil, err
	}
	return f, n, nil
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fire a net from a petri file until it settles",
	Long: `Load a net and its initial marking from a petri file and fire the first
enabled transition, in file order, until none is enabled. --until stops earlier
once the expression, evaluated with place names bound to token counts, is true:

  inhibitor run -i divider.yaml --until 'res == 2'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, n, err := loadPetrifile(cmd)
		if err != nil {
			return err
		}
		m, err := f.Marking()
		if err != nil {
			return err
		}
		stop, err := untilStop(until, n.Places())
		if err != nil {
			return err
		}
		res, err := drive(cmd.Context(), logger.With(zap.String("net", f.Name)), n, m, maxSteps, stop)
		if err != nil {
			logger.Error("run failed", zap.String("input", inputFile), zap.Error(err))
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s after %d firings\n", f.Name, res.Outcome, res.Steps)
		fmt.Fprintln(out, res.Marking)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input petri file")
	runCmd.Flags().StringVarP(&until, "until", "u", "", "stop once this expression over the marking is true")
}
