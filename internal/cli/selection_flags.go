// internal/cli/selection_flags.go
package fraudlens

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/fraudlens/internal/logging"
	"github.com/mwiater/fraudlens/internal/selection"
)

// addSelectionFlags registers the flags that override the default selection.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("models", "", "comma separated models (default: all)")
	cmd.Flags().String("fairness", "", `comma separated fairness labels, e.g. "SPD — Gender,MACE (overall) — Age" (default: Gender metrics)`)
	cmd.Flags().String("metrics", "", "comma separated performance metrics (default: all)")
	cmd.Flags().Bool("no-models", false, "select no models")
	cmd.Flags().Bool("no-fairness", false, "select no fairness metrics")
	cmd.Flags().Bool("no-metrics", false, "select no performance metrics")
}

// selectionFromFlags starts from the default selection and applies each
// selector flag the user set. Unknown values are an error.
func selectionFromFlags(cmd *cobra.Command, opts selection.Options) (selection.Selection, error) {
	sel := selection.Default(opts)

	apply := func(name, none string, target *[]string) error {
		empty, _ := cmd.Flags().GetBool(none)
		changed := cmd.Flags().Changed(name)
		if empty && changed {
			return fmt.Errorf("--%s and --%s cannot be combined", name, none)
		}
		if empty {
			*target = []string{}
			return nil
		}
		if changed {
			raw, _ := cmd.Flags().GetString(name)
			*target = selection.ParseList(raw)
		}
		return nil
	}
	if err := apply("models", "no-models", &sel.Models); err != nil {
		return selection.Selection{}, err
	}
	if err := apply("fairness", "no-fairness", &sel.FairnessLabels); err != nil {
		return selection.Selection{}, err
	}
	if err := apply("metrics", "no-metrics", &sel.PerfMetrics); err != nil {
		return selection.Selection{}, err
	}

	if unknown := opts.Unknown(sel); len(unknown) > 0 {
		return selection.Selection{}, fmt.Errorf("unknown selection value(s): %s (see 'fraudlens list options')", strings.Join(unknown, ", "))
	}
	sel = opts.Sanitize(sel)

	logging.LogSelection(cmd.Name(), sel)
	if DebugEnabled() {
		pp.Fprintln(cmd.ErrOrStderr(), sel)
	}
	return sel, nil
}
