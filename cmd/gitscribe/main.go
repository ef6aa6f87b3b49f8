package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sprite-ai/gitscribe/internal/cli"
	"github.com/sprite-ai/gitscribe/internal/ui"
)

func main() {
	// An interrupt at any blocking point unwinds immediately with no
	// further side effects.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\nOperation canceled by user.")
		os.Exit(130)
	}()

	if err := cli.Execute(); err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
