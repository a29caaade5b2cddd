// internal/cli/render.go
package fraudlens

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/selection"
)

// renderCmd implements 'render', which prints the dashboard for one selection.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the dashboard for a selection",
	Long:  `The 'render' command prints the dashboard for the selection given by flags, as terminal bar charts (text), JSON, YAML or a standalone HTML page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := selection.Available()
		sel, err := selectionFromFlags(cmd, opts)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		width, _ := cmd.Flags().GetInt("width")
		return renderDashboard(cmd.OutOrStdout(), report.Build(opts, sel), format, width)
	},
}

func renderDashboard(w io.Writer, d report.Dashboard, format string, width int) error {
	switch format {
	case "text", "":
		_, err := io.WriteString(w, report.RenderText(d, width))
		return err
	case "json":
		return report.WriteJSON(w, d)
	case "yaml":
		return report.WriteYAML(w, d)
	case "html":
		return report.RenderHTML(w, d, report.PageOptions{AssetsHost: GetConfig().AssetsHost, FairnessHeight: GetConfig().ChartHeightPx()})
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or html)", format)
	}
}

func init() {
	addSelectionFlags(renderCmd)
	renderCmd.Flags().StringP("format", "f", "text", "output format: text, json, yaml or html")
	renderCmd.Flags().Int("width", 100, "terminal width for text output")
	rootCmd.AddCommand(renderCmd)
}
