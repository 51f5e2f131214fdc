// Package main is the tracks CLI. It replays layout scenarios written in
// YAML and prints the resolved tracks and placements, or draws them.
//
// Usage:
//
//	tracks resolve [file...]         Print scenario outcomes as JSON
//	tracks render -o dir [file...]   Draw each scenario to dir/<name>.png
//	tracks version                   Print version information
//
// Settings come from ./tracks.yaml (or --config), TRACKS_* environment
// variables and flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
