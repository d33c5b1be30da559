package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsplit/internal/cli"
	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/observability"
)

// Exit codes.
const (
	exitFailure     = 1
	exitInvalidArgs = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	if err == nil {
		return
	}
	if stderrors.Is(err, context.Canceled) {
		os.Exit(exitInterrupted)
	}
	fmt.Fprintf(os.Stderr, "plotsplit: %v\n", err)
	os.Exit(exitCode(err))
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolved geometry and render timings")

	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
			observability.SetRenderHooks(cli.NewRenderTimer(c.Logger))
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode separates bad input, which the user can fix by changing the
// command line or figure file, from failures while writing output.
func exitCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidTarget,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeUnsupportedOutput,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeFileExists:
		return exitInvalidArgs
	default:
		return exitFailure
	}
}
