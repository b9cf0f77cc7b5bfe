package db_models

import (
	"time"
)

type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// ChatMessage is one entry in a conversation. Messages are append-only and
// never mutated after creation.
type ChatMessage struct {
	ID          string     `json:"id"`
	Sender      ChatSender `json:"sender"`
	Text        string     `json:"text"`
	Timestamp   time.Time  `json:"timestamp"`
	Suggestions []string   `json:"suggestions,omitempty"`
	TripPatch   *TripPatch `json:"tripPatch,omitempty"`
}

// TripPatch enumerates exactly the trip fields a chat reply may touch.
// Anything else in an assistant payload is discarded on decode.
type TripPatch struct {
	Location    *string      `json:"location,omitempty"`
	StartDate   *time.Time   `json:"startDate,omitempty"`
	EndDate     *time.Time   `json:"endDate,omitempty"`
	Budget      *int64       `json:"budget,omitempty"`
	TravelStyle *TravelStyle `json:"travelStyle,omitempty"`
}

// Empty reports whether the patch touches nothing.
func (p *TripPatch) Empty() bool {
	return p == nil ||
		(p.Location == nil && p.StartDate == nil && p.EndDate == nil &&
			p.Budget == nil && p.TravelStyle == nil)
}
