package models

// Member is stored as a JSON entry of the members list. Field names are
// capitalised on the wire, matching the list entries existing clients read.
type Member struct {
	Name  string `json:"Name"`
	Score int    `json:"Score"`
}
