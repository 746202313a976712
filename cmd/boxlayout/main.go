// Package main provides the boxlayout CLI, which measures declarative layout
// documents and reports the resulting geometry.
//
// Usage:
//
//	boxlayout measure [path...]   Measure documents and print their geometry
//	boxlayout check [path...]     Decode and build documents without measuring
//	boxlayout version             Print version information
//
// Examples:
//
//	boxlayout measure card.yaml                Print a table for one document
//	boxlayout measure --format=json ./...      Measure every document recursively
//	boxlayout measure --locale=ar screens      Mirror every root without a locale
//	boxlayout check ./layouts/...              Validate documents only
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-boxlayout/pkg/debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
