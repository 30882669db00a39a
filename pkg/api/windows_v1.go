// Package api defines the stable wire formats emitted by findextend.
package api

// WindowV1 is the stable JSONL schema for one accepted extension window.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type WindowV1 struct {
	MatchID string `json:"match_id"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}
