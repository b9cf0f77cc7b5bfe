package response_models

import (
	"tourmuse/internal/models/db_models"
)

const (
	NextAuth      = "auth"
	NextItinerary = "itinerary"
)

// SubmitPlanResponse tells the caller which way the submission went: to the
// auth detour with the draft staged, or straight to the itinerary.
type SubmitPlanResponse struct {
	Next  string               `json:"next"`
	Draft *db_models.TripDraft `json:"draft,omitempty"`
}
