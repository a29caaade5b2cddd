// internal/cli/tui.go
package fraudlens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/fraudlens/internal/selection"
	"github.com/mwiater/fraudlens/internal/tui"
)

// tuiCmd implements 'tui', the interactive terminal dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := tui.Run(cmd.Context(), selection.Available())
		if err != nil {
			return err
		}
		if DebugEnabled() {
			fmt.Fprintf(cmd.OutOrStdout(), "final selection: %s\n", sel.Query().Encode())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
