package domain

import "time"

type Restaurant struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Menu      []Activity `json:"menu,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Store struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Catalog   []Activity `json:"catalog,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// VenueInfo carries the construction parameters of the park. AttractionZones
// is passed through from config and not consumed by any ledger rule.
type VenueInfo struct {
	Name            string `json:"name"`
	AttractionZones int    `json:"attraction_zones"`
}
