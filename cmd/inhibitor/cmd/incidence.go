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

	"github.com/jt05610/petri-inhibitor/analysis"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// incidenceCmd represents the incidence command
var incidenceCmd = &cobra.Command{
	Use:   "incidence",
	Short: "Print the incidence and inhibitor matrices of a net",
	Long: `Print the incidence matrix C of a net, one row per transition and one
column per place, along with the matrix of inhibitor arcs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, n, err := loadPetrifile(cmd)
		if err != nil {
			return err
		}
		aNet := analysis.New(n)
		names := make([]string, 0)
		for _, t := range n.Transitions() {
			names = append(names, t.Name())
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "places:      %v\n", n.Places())
		fmt.Fprintf(out, "transitions: %v\n", names)
		fmt.Fprintf(out, "C = %v\n", mat.Formatted(aNet.Incidence(), mat.Prefix("    "), mat.Squeeze()))
		fmt.Fprintf(out, "I = %v\n", mat.Formatted(aNet.Inhibitors(), mat.Prefix("    "), mat.Squeeze()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(incidenceCmd)
	incidenceCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input petri file")
}
