// internal/blast/search.go
package blast

import (
	"context"
	"strconv"

	"findextend-core/report"
)

// SearchRequest describes one nucleotide search producing a tabular report.
type SearchRequest struct {
	Query         string // query FASTA path
	DB            string // BLAST database identifier
	Out           string // tabular report output path
	MaxTargetSeqs int
	Threads       int
}

// Searcher runs the search that produces the tabular report at req.Out.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) error
}

// BlastnSearcher shells out to blastn from NCBI BLAST+. The column layout is
// pinned to report.Columns so the parser and the search can never disagree.
type BlastnSearcher struct{}

func blastnArgs(req SearchRequest) []string {
	return []string{
		"blastn",
		"-query", req.Query,
		"-db", req.DB,
		"-out", req.Out,
		"-outfmt", "6 " + report.Columns,
		"-max_target_seqs", strconv.Itoa(req.MaxTargetSeqs),
		"-num_threads", strconv.Itoa(req.Threads),
	}
}

func (BlastnSearcher) Search(ctx context.Context, req SearchRequest) error {
	return runTool(ctx, blastnArgs(req), nil)
}
