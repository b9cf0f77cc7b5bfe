package request_models

import (
	"time"
)

// UpdateTripRequest carries a partial update; only non-nil fields are written.
type UpdateTripRequest struct {
	Location    *string    `json:"location,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Budget      *int64     `json:"budget,omitempty"`
	TravelStyle *string    `json:"travelStyle,omitempty"`
	EcoFriendly *bool      `json:"ecoFriendly,omitempty"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
