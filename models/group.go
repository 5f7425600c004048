package models

// Group is one round-robin pool. Labels are sequential letters (A, B, C, ...).
// Membership is fixed from creation until groups are regenerated.
type Group struct {
	Label string   `json:"label"`
	Teams []string `json:"teams"`
}
