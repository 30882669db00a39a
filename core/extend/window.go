// core/extend/window.go
package extend

import (
	"fmt"

	"findextend-core/report"
)

// Window is the extended coordinate range to extract for one accepted match.
// Coordinates are 1-based inclusive and already clamped to the subject, so
// 1 <= Start <= End <= SubjectLength always holds.
type Window struct {
	MatchID string
	Start   int
	End     int
}

// CoordinateError reports a record whose subject coordinates violate
// 1 <= start < end <= length. blastn writes reverse-strand hits with
// start > end; those are not supported.
type CoordinateError struct {
	Record report.Record
}

func (e *CoordinateError) Error() string {
	r := e.Record
	return fmt.Sprintf("extend: bad subject coordinates %d..%d (length %d) for match %q (reverse strand hit?)",
		r.SubjectStart, r.SubjectEnd, r.SubjectLength, r.MatchID)
}

// WindowFor widens rec's subject range by cfg's margins, clamped to
// [1, SubjectLength].
func WindowFor(rec report.Record, cfg Config) (Window, error) {
	if rec.SubjectStart < 1 || rec.SubjectStart >= rec.SubjectEnd || rec.SubjectEnd > rec.SubjectLength {
		return Window{}, &CoordinateError{Record: rec}
	}
	start := rec.SubjectStart - cfg.Upstream
	if start < 1 {
		start = 1
	}
	end := rec.SubjectEnd + cfg.Downstream
	if end > rec.SubjectLength {
		end = rec.SubjectLength
	}
	return Window{MatchID: rec.MatchID, Start: start, End: end}, nil
}
