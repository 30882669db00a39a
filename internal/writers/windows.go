// internal/writers/windows.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"findextend-core/extend"
	"findextend/internal/jsonlutil"
	"findextend/internal/output"
	"findextend/pkg/api"
)

// StartWindowWriter spins up a writer goroutine for accepted extension
// windows. Supported formats: "text" (TSV, optional header) and "jsonl"
// (one api.WindowV1 per line). Close the channel to finish; the error channel
// yields exactly one value.
func StartWindowWriter(out io.Writer, format string, header bool, bufSize int) (chan<- extend.Window, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}

	switch format {
	case "jsonl":
		return jsonlutil.Start[extend.Window](out, bufSize,
			func(enc *json.Encoder, w extend.Window) error {
				return enc.Encode(api.WindowV1{MatchID: w.MatchID, Start: w.Start, End: w.End})
			},
			IsBrokenPipe,
		)

	case "text":
		in := make(chan extend.Window, bufSize)
		errCh := make(chan error, 1)
		go func() {
			var err error
			if header {
				_, err = fmt.Fprintln(out, output.WindowTSVHeader)
			}
			for w := range in {
				if err != nil {
					continue // drain
				}
				err = output.WriteWindowRow(out, w)
			}
			if IsBrokenPipe(err) {
				err = nil
			}
			errCh <- err
		}()
		return in, errCh

	default:
		in := make(chan extend.Window, bufSize)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- fmt.Errorf("unknown window format %q (no writer registered)", format)
		}()
		return in, errCh
	}
}
