// cmd/fraudlens/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mwiater/fraudlens/internal/appconfig"
	fraudlens "github.com/mwiater/fraudlens/internal/cli"
	"github.com/mwiater/fraudlens/internal/logging"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	loadConfig     = appconfig.Load
	initLogging    = logging.Init
	closeLogging   = logging.Close
	setVersionInfo = fraudlens.SetVersionInfo
	executeCmd     = fraudlens.Execute
)

// main opens the log before cobra parses flags so startup problems are
// recorded, then hands off to the root command.
func main() {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		cfg = appconfig.Defaults()
	}
	if err := initLogging(cfg.LogFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
	}
	defer closeLogging()

	setVersionInfo(version, commit, date)
	executeCmd()
}
