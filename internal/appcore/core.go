// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/sync/errgroup"

	"findextend-core/extend"
	"findextend/internal/blast"
	"findextend/internal/cmdutil"
	"findextend/internal/writers"
)

// Options carries the validated run configuration into the pipeline.
type Options struct {
	Query    string
	Database string
	Output   string

	OutputBlast   string
	OutputWindows string
	WindowsFormat string
	Header        bool

	Filter        extend.Config
	MaxTargetSeqs int
	Threads       int

	Quiet bool
}

// Run executes the search → filter/extend → extract pipeline and returns the
// process exit code. The extracted regions land in Options.Output; all
// diagnostics (per-candidate lines and the final count) go to stderr.
//
// The temporary working directory is removed on every exit path. Any failure
// is terminal for the run; no partial output is declared valid.
func Run(parent context.Context, stderr io.Writer, o Options, search blast.Searcher, extract blast.Extractor) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	workDir, err := os.MkdirTemp("", "findextend-")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	defer os.RemoveAll(workDir)

	tabular := o.OutputBlast
	if tabular == "" {
		tabular = filepath.Join(workDir, "matches.tabular")
	}

	if err := search.Search(ctx, blast.SearchRequest{
		Query:         o.Query,
		DB:            o.Database,
		Out:           tabular,
		MaxTargetSeqs: o.MaxTargetSeqs,
		Threads:       o.Threads,
	}); err != nil {
		return fail(stderr, err)
	}

	rep, err := os.Open(tabular)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	defer rep.Close()

	outw := fileio.EasyCreate(o.Output)

	var (
		winCh   chan<- extend.Window
		winErr  <-chan error
		winFile *fileio.EasyWriter
	)
	if o.OutputWindows != "" {
		winFile = fileio.EasyCreate(o.OutputWindows)
		winCh, winErr = writers.StartWindowWriter(winFile, o.WindowsFormat, o.Header, 64)
	}

	// One goroutine scans the report, the other extracts, so a slow
	// blastdbcmd never stalls line parsing. Report order is preserved:
	// windows flow through a single channel and one consumer.
	count := 0
	stream := make(chan extend.Window, 64)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(stream)
		n, err := extend.Candidates(gctx, rep, o.Filter, func(w extend.Window) error {
			select {
			case stream <- w:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		count = n
		return err
	})
	g.Go(func() error {
		for w := range stream {
			cmdutil.Notef(stderr, o.Quiet, "%s %d-%d", w.MatchID, w.Start, w.End)
			if winCh != nil {
				winCh <- w
			}
			if err := extract.Extract(gctx, o.Database, w, outw); err != nil {
				return err
			}
		}
		return nil
	})
	err = g.Wait()

	if winCh != nil {
		close(winCh)
		if werr := <-winErr; err == nil && werr != nil {
			err = werr
		}
		if cerr := winFile.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}
	if cerr := outw.Close(); err == nil && cerr != nil {
		err = cerr
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return fail(stderr, err)
	}

	fmt.Fprintf(stderr, "%d candidates\n", count)
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	return 3
}
