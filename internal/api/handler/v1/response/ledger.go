package response

import "github.com/treasuretrails/park-api/internal/domain"

type CreditsResponse struct {
	Credits int `json:"credits"`
}

type CounterResponse struct {
	ActivityID uint `json:"activity_id"`
	Count      int  `json:"count"`
}

type PurchaseTicketResponse struct {
	TicketID uint `json:"ticket_id"`
	Credits  int  `json:"credits"`
}

type ActivityIDsResponse struct {
	ActivityIDs []uint `json:"activity_ids"`
}

func NewActivityIDs(activities []domain.Activity) ActivityIDsResponse {
	ids := make([]uint, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}

	return ActivityIDsResponse{ActivityIDs: ids}
}
