package response_models

import (
	"tourmuse/internal/models/db_models"
)

// ItineraryResponse wraps the active itinerary with the replan busy flag so
// clients can block confirm/export while a regeneration is in flight.
type ItineraryResponse struct {
	Itinerary *db_models.Itinerary `json:"itinerary"`
	Busy      bool                 `json:"busy"`
}
