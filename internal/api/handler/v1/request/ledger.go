package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// PurchaseTicketRequest carries the payment supplied by the calling
// environment, in the same minor units as the ticket price.
type PurchaseTicketRequest struct {
	Payment int64 `json:"payment"`
}

func (req *PurchaseTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Payment, validation.Min(int64(0))),
	)
}

type BatchPurchaseRequest struct {
	ActivityIDs []uint `json:"activity_ids"`
}

func (req *BatchPurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityIDs, validation.Required, validation.Length(1, 0)),
	)
}
