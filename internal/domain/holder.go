package domain

import "time"

// HolderAccount is the per-visitor ledger record. It is created lazily on the
// first ticket purchase and keyed by the user ID of the caller. TicketID is
// set at most once; Credits never goes below zero.
type HolderAccount struct {
	UserID    uint      `json:"user_id"`
	TicketID  *uint     `json:"ticket_id,omitempty"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a HolderAccount) HasTicket() bool {
	return a.TicketID != nil
}

// AccessCounter holds the entrance/exit tallies of one holder for one
// attraction.
type AccessCounter struct {
	ActivityID uint `json:"activity_id"`
	Entrances  int  `json:"entrances"`
	Exits      int  `json:"exits"`
}
