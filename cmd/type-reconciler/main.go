// Package main provides the CLI entrypoint for type-reconciler.
//
// type-reconciler links the items of two sequences by similarity:
//   - "fields" reconciles the fields of old and new struct layouts listed in
//     a YAML file and reports links, discarded and added fields
//   - "words" reconciles two word lists and prints the mapping scheme
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
