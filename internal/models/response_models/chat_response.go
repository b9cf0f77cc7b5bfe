package response_models

import (
	"tourmuse/internal/models/db_models"
)

// ChatResponse matches the assistant wire shape: reply text, optional quick
// suggestions, optional trip patch, optional action hint.
type ChatResponse struct {
	Message     string               `json:"message"`
	Suggestions []string             `json:"suggestions,omitempty"`
	TripPatch   *db_models.TripPatch `json:"tripData,omitempty"`
	Action      string               `json:"action,omitempty"`
}
