package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wires OS signals, stdio, and the process exit code around a Run
// function. SIGINT/SIGTERM cancel the context so in-flight BLAST invocations
// are killed and temporary files get cleaned up.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
