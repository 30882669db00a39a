// core/extend/candidates.go
package extend

import (
	"context"
	"io"

	"findextend-core/report"
)

// Candidates streams the tabular report in r, drops records below the
// thresholds, and emits one Window per surviving record, preserving report
// order. It returns the number of accepted records.
//
// The stream is consumed exactly once. Any error (malformed line, coordinate
// violation, emit failure, cancellation) halts the run; the count reflects
// only windows already emitted.
func Candidates(ctx context.Context, r io.Reader, cfg Config, emit func(Window) error) (int, error) {
	count := 0
	err := report.Scan(ctx, r, func(rec report.Record) error {
		if !Passes(rec, cfg) {
			return nil
		}
		w, err := WindowFor(rec, cfg)
		if err != nil {
			return err
		}
		if err := emit(w); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
