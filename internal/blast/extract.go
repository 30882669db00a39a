// internal/blast/extract.go
package blast

import (
	"context"
	"fmt"
	"io"

	"findextend-core/extend"
)

// Extractor retrieves the subsequence covered by one extension window,
// writing it in FASTA to out.
type Extractor interface {
	Extract(ctx context.Context, db string, w extend.Window, out io.Writer) error
}

// BlastdbcmdExtractor shells out to blastdbcmd from NCBI BLAST+.
type BlastdbcmdExtractor struct{}

func blastdbcmdArgs(db string, w extend.Window) []string {
	return []string{
		"blastdbcmd",
		"-db", db,
		"-entry", w.MatchID,
		"-range", fmt.Sprintf("%d-%d", w.Start, w.End),
	}
}

func (BlastdbcmdExtractor) Extract(ctx context.Context, db string, w extend.Window, out io.Writer) error {
	return runTool(ctx, blastdbcmdArgs(db, w), out)
}
