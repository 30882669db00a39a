// internal/runutil/slots.go
package runutil

import "strconv"

// GalaxySlots returns the default BLAST thread count from the GALAXY_SLOTS
// environment variable (the per-job slot count Galaxy exports), falling back
// to 1 when the variable is unset or unusable. A bad value is never fatal.
func GalaxySlots(getenv func(string) string) int {
	v := getenv("GALAXY_SLOTS")
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
