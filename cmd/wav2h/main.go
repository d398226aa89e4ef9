// SPDX-License-Identifier: EPL-2.0

// Package main provides the wav2h CLI.
//
// Usage:
//
//	wav2h [flags] <command> [args]
//
// Commands:
//
//	convert - convert one audio file into a C header
//	batch   - convert every job listed in a YAML manifest
//	info    - print the properties of an audio file
//	verify  - check a generated header
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ik5/wav2h/cmd/wav2h/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
