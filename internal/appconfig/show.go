// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		d := Defaults()
		cfg = &d
	}

	assets := cfg.AssetsHost
	if assets == "" {
		assets = "(default)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Listen Address:  %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Export Dir:      %s\n", cfg.ExportDirectory())
	fmt.Fprintf(out, "  Read Timeout:    %s\n", cfg.ReadTimeoutDuration())
	fmt.Fprintf(out, "  Write Timeout:   %s\n", cfg.WriteTimeoutDuration())
	fmt.Fprintf(out, "  Chart Height:    %dpx\n", cfg.ChartHeightPx())
	fmt.Fprintf(out, "  Assets Host:     %s\n", assets)
}
