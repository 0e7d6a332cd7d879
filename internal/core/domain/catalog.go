package domain

// ImportResult counts the outcome of a catalog import.
type ImportResult struct {
	// Source names where the foods came from.
	Source string `json:"source"`

	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Total returns the number of foods written.
func (r *ImportResult) Total() int {
	return r.Created + r.Updated
}
