// core/report/record.go
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns is the fixed blastn -outfmt 6 column specification the parser
// understands. The order is load-bearing: field i of a report line maps to
// word i of this string.
const Columns = "qseqid sseqid pident qcovhsp sstart send slen"

// ColumnCount is the number of fields in Columns.
const ColumnCount = 7

// Record is one row of the tabular report. Subject coordinates are 1-based
// and inclusive.
type Record struct {
	QueryID       string
	MatchID       string
	Identity      float64 // percent identity, 0–100
	Coverage      float64 // query coverage per HSP, 0–100
	SubjectStart  int
	SubjectEnd    int
	SubjectLength int
}

// ParseLine parses a single report line. The bool return is false for lines
// that carry no record: blank lines and '#' comments.
func ParseLine(line string) (Record, bool, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || strings.HasPrefix(line, "#") {
		return Record{}, false, nil
	}
	parts := strings.Split(line, "\t")
	if len(parts) != ColumnCount {
		return Record{}, false, &MalformedLineError{Want: ColumnCount, Got: len(parts), Line: line}
	}

	var (
		rec Record
		err error
	)
	rec.QueryID = parts[0]
	rec.MatchID = parts[1]
	if rec.Identity, err = parseFloat("pident", parts[2]); err != nil {
		return Record{}, false, err
	}
	if rec.Coverage, err = parseFloat("qcovhsp", parts[3]); err != nil {
		return Record{}, false, err
	}
	if rec.SubjectStart, err = parseInt("sstart", parts[4]); err != nil {
		return Record{}, false, err
	}
	if rec.SubjectEnd, err = parseInt("send", parts[5]); err != nil {
		return Record{}, false, err
	}
	if rec.SubjectLength, err = parseInt("slen", parts[6]); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func parseFloat(col, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("report: bad %s value %q", col, s)
	}
	return v, nil
}

func parseInt(col, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("report: bad %s value %q", col, s)
	}
	return v, nil
}
