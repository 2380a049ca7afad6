package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// An interrupted run already printed its own status; keep Ctrl-C quiet.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "resumetailor: "+err.Error())
		}
		os.Exit(1)
	}
}
