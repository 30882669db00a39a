// internal/blast/tool.go
package blast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ToolError reports a non-zero exit from an external BLAST+ tool. Runs are
// never retried; the failing command line and exit code are surfaced to the
// user verbatim.
type ToolError struct {
	Argv     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("error %d from: %s", e.ExitCode, strings.Join(e.Argv, " "))
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

// runTool executes argv, streaming stdout to out (when non-nil) and capturing
// stderr for diagnostics. Cancellation wins over the resulting exit error.
func runTool(ctx context.Context, argv []string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var errBuf bytes.Buffer
	cmd.Stdout = out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	code := -1
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code = ee.ExitCode()
	} else {
		// Start failure (e.g. binary not on PATH); keep the message visible.
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return &ToolError{Argv: argv, ExitCode: code, Stderr: errBuf.String()}
}
