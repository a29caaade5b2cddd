// internal/cli/list_options.go
package fraudlens

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/fraudlens/internal/selection"
)

var (
	defaultOption = color.New(color.FgGreen).SprintFunc()
	otherOption   = color.New(color.FgHiBlack).SprintFunc()
	optionHeading = color.New(color.Bold, color.FgCyan).SprintFunc()
)

// optionsCmd implements 'list options', which prints every selector value,
// marking the ones selected by default.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List selector options (* marks defaults)",
	Run: func(cmd *cobra.Command, args []string) {
		runListOptions(cmd.OutOrStdout(), selection.Available())
	},
}

func runListOptions(w io.Writer, opts selection.Options) {
	def := selection.Default(opts)
	section := func(title string, universe, chosen []string) {
		fmt.Fprintln(w, optionHeading(title))
		for _, v := range universe {
			if selection.Contains(chosen, v) {
				fmt.Fprintf(w, "  * %s\n", defaultOption(v))
			} else {
				fmt.Fprintf(w, "    %s\n", otherOption(v))
			}
		}
	}
	section("Models (--models)", opts.Models, def.Models)
	section("Fairness metrics (--fairness)", opts.FairnessLabels(), def.FairnessLabels)
	section("Performance metrics (--metrics)", opts.PerfMetrics, def.PerfMetrics)
}

func init() {
	listCmd.AddCommand(optionsCmd)
}
