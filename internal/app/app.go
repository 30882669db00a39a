// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"findextend-core/extend"
	"findextend/internal/appcore"
	"findextend/internal/blast"
	"findextend/internal/cli"
	"findextend/internal/version"
)

// RunContext parses argv, wires the real BLAST+ runners, and executes the
// pipeline. User-facing output (help, version) goes to stdout; diagnostics
// and errors go to stderr. The returned value is the process exit code:
// 0 ok, 2 configuration error, 3 runtime failure, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("findextend")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "findextend version %s\n", version.Version)
		return 0
	}

	coreOpts := appcore.Options{
		Query:         opts.Query,
		Database:      opts.Database,
		Output:        opts.Output,
		OutputBlast:   opts.OutputBlast,
		OutputWindows: opts.OutputWindows,
		WindowsFormat: opts.WindowsFormat,
		Header:        opts.Header,
		Filter: extend.Config{
			MinIdentity: opts.MinIdentity,
			MinCoverage: opts.MinCoverage,
			Upstream:    opts.Up,
			Downstream:  opts.Down,
		},
		MaxTargetSeqs: opts.MaxTargetSeqs,
		Threads:       opts.Threads,
		Quiet:         opts.Quiet,
	}
	return appcore.Run(parent, stderr, coreOpts, blast.BlastnSearcher{}, blast.BlastdbcmdExtractor{})
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
