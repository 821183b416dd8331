package model

// Location represents a physical storage or distribution site (a hub).
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Type    string `json:"type,omitempty"`
}

// LocationAll is the sentinel location selector meaning "no location filter".
const LocationAll = "all"
