package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/accntech/sharprinter/internal/cli"
	"github.com/accntech/sharprinter/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			_ = r.RenderError(err)
		}
		stop()
		os.Exit(1)
	}
}
