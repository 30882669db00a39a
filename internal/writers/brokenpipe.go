package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Happens when a downstream consumer (like `head`) closes early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
