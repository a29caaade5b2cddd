// internal/cli/export.go
package fraudlens

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/fraudlens/internal/report"
	"github.com/mwiater/fraudlens/internal/selection"
)

// exportCmd implements 'export', which writes the dashboard for a selection
// as files: an HTML page, PNG charts, an XLSX workbook, JSON and YAML.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write dashboard artifacts for a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := selection.Available()
		sel, err := selectionFromFlags(cmd, opts)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetStringSlice("format")
		formats, err := parseFormats(raw)
		if err != nil {
			return err
		}

		cfg := GetConfig()
		dir := cfg.ExportDirectory()
		if cmd.Flags().Changed("out") {
			dir, _ = cmd.Flags().GetString("out")
		}

		paths, err := runExport(cmd.Context(), dir, report.Build(opts, sel), formats, cfg.ChartHeightPx(), cfg.AssetsHost)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	addSelectionFlags(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "output directory (default from config exportDir)")
	exportCmd.Flags().StringSlice("format", exportFormats, "artifact formats: html, png, xlsx, json, yaml")
	_ = viper.BindPFlag("exportDir", exportCmd.Flags().Lookup("out"))
	rootCmd.AddCommand(exportCmd)
}
