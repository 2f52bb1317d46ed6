package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTicketRequest struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	DurationDays   int    `json:"duration_days"`
	InitialCredits int    `json:"initial_credits"`
}

func (req *CreateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.Min(int64(0))),
		validation.Field(&req.DurationDays, validation.Required, validation.Min(1)),
		validation.Field(&req.InitialCredits, validation.Min(0)),
	)
}

type CreateActivityRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	EarnCredits     int    `json:"earn_credits"`
	DiscountCredits int    `json:"discount_credits"`
	// AvailableUntil is a unix timestamp in milliseconds.
	AvailableUntil int64  `json:"available_until"`
	Type           string `json:"type"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.EarnCredits, validation.Min(0)),
		validation.Field(&req.DiscountCredits, validation.Min(0)),
		validation.Field(&req.AvailableUntil, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Type, validation.Required, validation.In("CHALLENGE", "ATTRACTION", "MEAL", "PRODUCT")),
	)
}

type ToggleActivityRequest struct {
	Active *bool `json:"active"`
}

func (req *ToggleActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Active, validation.NotNil),
	)
}

type CreateVenueSpotRequest struct {
	Name string `json:"name"`
}

func (req *CreateVenueSpotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}

type SetActivityIDsRequest struct {
	ActivityIDs []uint `json:"activity_ids"`
}

func (req *SetActivityIDsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityIDs, validation.NotNil),
	)
}
