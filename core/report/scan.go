// core/report/scan.go
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Scan reads a tabular report line by line and calls emit for every parsed
// Record, in file order. It is single-pass: the first error (parse, emit, or
// cancellation) stops the scan and is returned as-is, so callers can inspect
// it with errors.As.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 1<<20)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, ok, err := ParseLine(sc.Text())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("report scan: %w", err)
	}
	return nil
}
