// internal/output/windows.go
package output

import (
	"fmt"
	"io"

	"findextend-core/extend"
)

// WindowTSVHeader is the canonical header row for the window report.
// Keep this as the single source of truth for the text writer.
const WindowTSVHeader = "match_id\tstart\tend"

// WriteWindowRow prints one accepted window as a TSV row.
func WriteWindowRow(w io.Writer, win extend.Window) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\n", win.MatchID, win.Start, win.End)
	return err
}
