package domain

import "time"

type LedgerEntryKind string

const (
	LedgerEntryTicketPurchase     LedgerEntryKind = "TicketPurchase"
	LedgerEntryChallengeReward    LedgerEntryKind = "ChallengeReward"
	LedgerEntryAttractionEntrance LedgerEntryKind = "AttractionEntrance"
	LedgerEntryAttractionExit     LedgerEntryKind = "AttractionExit"
	LedgerEntryMealPurchase       LedgerEntryKind = "MealPurchase"
	LedgerEntryProductPurchase    LedgerEntryKind = "ProductPurchase"
)

// LedgerEntry is one signed credit movement on a holder account. Amount is
// positive for earns and negative for spends; Reference is a stable external
// identifier for reconciliation.
type LedgerEntry struct {
	ID         uint            `json:"id"`
	Reference  string          `json:"reference"`
	HolderID   uint            `json:"holder_id"`
	ActivityID *uint           `json:"activity_id,omitempty"`
	Amount     int             `json:"amount"`
	Kind       LedgerEntryKind `json:"kind"`
	CreatedAt  time.Time       `json:"created_at"`
}
