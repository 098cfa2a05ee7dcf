package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	internalErrors "github.com/knagato/posterswap/internal/errors"

	"github.com/knagato/posterswap/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	if err := app.Config.LoadFromFile(); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		app.exit(1)
	}
	app.Config.LoadFromEnvironment()

	if err := app.Config.ParseFlags(); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		app.exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := app.Run(ctx); err != nil {
		// Context cancellation is the normal signal shutdown path
		if !internalErrors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
			_ = app.Close()
			app.exit(1)
		}
	}

	if !app.Config.Version && app.Rotator != nil {
		app.Rotator.PrintSummary()
	}
	_ = app.Close()
}
