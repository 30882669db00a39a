// core/report/errors.go
package report

import "fmt"

// MalformedLineError reports a tabular line whose field count does not match
// Columns. The usual cause is an incompatible BLAST+ release: versions before
// 2.2.28 silently drop the unknown qcovhsp field instead of failing.
type MalformedLineError struct {
	Want int
	Got  int
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("report: expected %d tab-separated columns, got %d:\n%s\n"+
		"(the qcovhsp column needs BLAST+ 2.2.28 or later; check the blastn version)",
		e.Want, e.Got, e.Line)
}
