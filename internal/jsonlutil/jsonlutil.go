// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// The input channel is always drained so producers never block after a write
// failure; the first error is reported on the returned channel.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)

		var err error
		for v := range in {
			if err != nil {
				continue // drain
			}
			err = encode(enc, v)
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
