// core/extend/config.go
package extend

import "findextend-core/report"

// Config controls filtering and coordinate extension. It is built once at
// startup and passed by value; nothing in this package reads the environment.
type Config struct {
	MinIdentity float64 // percent, 0–100
	MinCoverage float64 // percent, 0–100
	Upstream    int     // bases added before SubjectStart
	Downstream  int     // bases added after SubjectEnd
}

// Passes reports whether rec clears both thresholds. Comparisons are
// inclusive: a record sitting exactly on a threshold is kept.
func Passes(rec report.Record, cfg Config) bool {
	return rec.Identity >= cfg.MinIdentity && rec.Coverage >= cfg.MinCoverage
}
