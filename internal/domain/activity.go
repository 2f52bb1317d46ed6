package domain

import "time"

type ActivityType string

const (
	ActivityTypeChallenge  ActivityType = "CHALLENGE"
	ActivityTypeAttraction ActivityType = "ATTRACTION"
	ActivityTypeMeal       ActivityType = "MEAL"
	ActivityTypeProduct    ActivityType = "PRODUCT"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeChallenge, ActivityTypeAttraction, ActivityTypeMeal, ActivityTypeProduct:
		return true
	}

	return false
}

type Activity struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	EarnCredits     int          `json:"earn_credits"`
	DiscountCredits int          `json:"discount_credits"`
	AvailableUntil  time.Time    `json:"available_until"`
	Type            ActivityType `json:"type"`
	IsActive        bool         `json:"is_active"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
