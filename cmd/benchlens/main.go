// cmd/benchlens/main.go
package main

import (
	cmd "github.com/benchlens/benchlens/internal/cli"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the benchlens CLI application by delegating to the cobra
// root command defined in the benchlens package.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
