package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wbrown/vid2ascii/internal/log"
)

func main() {
	// Interrupting the camera loop is the normal way to stop it.
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(defaultEnv())
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error("vid2ascii failed", "error", err)
		os.Exit(1)
	}
}
