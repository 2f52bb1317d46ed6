package domain

import "time"

// Ticket is an entry pass sold by the venue. Price is expressed in minor
// currency units; InitialCredits is the balance granted on purchase.
type Ticket struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Price          int64     `json:"price"`
	DurationDays   int       `json:"duration_days"`
	InitialCredits int       `json:"initial_credits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
