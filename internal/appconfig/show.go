// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "\nCurrent configuration:")
	fmt.Fprintf(out, "  Debug:             %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Override derived:  %v\n", cfg.Override)
	fmt.Fprintf(out, "  Data path:         %s\n", orUnset(cfg.DataPath))
	fmt.Fprintf(out, "  Export path:       %s\n", orUnset(cfg.ExportPath))
	fmt.Fprintf(out, "  Log file:          %s\n", cfg.LogFilePath())
	fmt.Fprintln(out, "  Conversion factors:")
	fmt.Fprintf(out, "    LED bulb:        %v W\n", cfg.Factors.LEDBulbWatts)
	fmt.Fprintf(out, "    Grid intensity:  %v gCO2/kWh\n", cfg.Factors.GridIntensityGCO2PerKWh)
	fmt.Fprintf(out, "    Online video:    %v Wh/min\n", cfg.Factors.OnlineVideoWhPerMin)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
