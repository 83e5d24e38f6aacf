package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-simplequestion/pkg/ask"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDeclined):
		return 1
	case errors.Is(err, ask.ErrAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "aborted")
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
}
