package models

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a window of a list endpoint.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Normalize clamps the limit to 1..MaxPageLimit (0 means DefaultPageLimit)
// and negative offsets to zero.
func (p Page) Normalize() Page {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
