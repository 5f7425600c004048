package models

// Team is a registered entry in the tournament. The name is the identity:
// it is what groups, matches and standings refer to.
type Team struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactInfo   string `json:"contact_info"`
	Paid          bool   `json:"paid"`
	Notes         string `json:"notes,omitempty"`
}
