// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Notef writes one diagnostic line unless quiet is set.
func Notef(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
