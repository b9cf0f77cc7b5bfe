package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tourmuse/internal/config"
	"tourmuse/internal/models/db_models"
)

var ErrNotConfigured = errors.New("ai provider not configured")

// ChatReply is what the remote assistant sends back for one message.
type ChatReply struct {
	Message     string               `json:"message"`
	Suggestions []string             `json:"suggestions,omitempty"`
	TripPatch   *db_models.TripPatch `json:"tripData,omitempty"`
	Action      string               `json:"action,omitempty"`
}

// Client is the remote planning/assistant collaborator. Every method may fail
// and callers are expected to degrade to local data.
type Client interface {
	GenerateItinerary(ctx context.Context, draft db_models.TripDraft) (*db_models.Itinerary, error)
	Respond(ctx context.Context, message string, trip *db_models.Trip) (*ChatReply, error)
}

// New picks the provider from configuration. A nil client with a nil error
// means no provider is configured and only local behavior is available.
func New(cfg *config.Config) (Client, error) {
	switch cfg.AIProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: missing OPENAI_API_KEY")
		}
		return newOpenAIClient(cfg.OpenAIKey), nil
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("gemini: missing GEMINI_API_KEY")
		}
		return newGeminiClient(cfg.GeminiKey, cfg.GeminiModel)
	case "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
}

// itineraryPrompt asks for JSON matching the itinerary document shape.
func itineraryPrompt(draft db_models.TripDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert travel planner. Plan a trip to %s from %s to %s
for a traveler with a %d budget and a %q travel style.`,
		draft.Location,
		draft.StartDate.Format("2006-01-02"),
		draft.EndDate.Format("2006-01-02"),
		draft.Budget,
		draft.TravelStyle)
	if draft.EcoFriendly {
		b.WriteString(" Prefer eco-friendly transport and activities.")
	}
	b.WriteString(`

Return JSON only, no prose, matching exactly:
{
  "days": [
    {
      "date": "2025-01-02T00:00:00Z",
      "activities": [
        {"name":"...","time":"09:00","duration":"2h","location":"...",
         "cost":10,"transportMode":"metro","transportCost":2,
         "entryFee":5,"weather":"Sunny, 22C"}
      ]
    }
  ]
}

Hard constraints:
- One entry per day of the trip, dates RFC3339 at midnight UTC, in order.
- Activities sorted by time, 2-5 per day, times between 09:00 and 21:00.
- All costs are non-negative numbers.`)
	return b.String()
}

func chatPrompt(message string, trip *db_models.Trip) string {
	var b strings.Builder
	b.WriteString(`You are a travel assistant. Answer the user's message and return JSON only:
{"message":"...","suggestions":["..."],"action":"","tripData":null}

"tripData" may only contain the keys location, startDate, endDate, budget,
travelStyle, and only when the user asked to change their trip; set "action"
to "modify_trip" in that case. Otherwise leave tripData null and action empty.`)
	if trip != nil {
		fmt.Fprintf(&b, "\n\nCurrent trip: destination %s, %s to %s, budget %d, style %s.",
			trip.Location,
			trip.StartDate.Format("2006-01-02"),
			trip.EndDate.Format("2006-01-02"),
			trip.Budget,
			trip.TravelStyle)
	}
	fmt.Fprintf(&b, "\n\nUser message: %s", message)
	return b.String()
}

func parseItineraryJSON(raw string) (*db_models.Itinerary, error) {
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("planner returned invalid JSON")
	}
	var it db_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	if len(it.Days) == 0 {
		return nil, fmt.Errorf("planner returned no days")
	}
	it.Normalize()
	return &it, nil
}

func parseChatJSON(raw string) (*ChatReply, error) {
	var envelope struct {
		Message     string          `json:"message"`
		Suggestions []string        `json:"suggestions"`
		TripData    json.RawMessage `json:"tripData"`
		Action      string          `json:"action"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("decode chat reply: %w", err)
	}
	if envelope.Message == "" {
		return nil, fmt.Errorf("assistant returned empty message")
	}

	reply := &ChatReply{
		Message:     envelope.Message,
		Suggestions: envelope.Suggestions,
		Action:      envelope.Action,
	}
	if len(envelope.TripData) > 0 && string(envelope.TripData) != "null" {
		patch, err := decodeTripPatch(envelope.TripData)
		if err != nil {
			return nil, err
		}
		reply.TripPatch = patch
	}
	return reply, nil
}

// decodeTripPatch rejects patches touching anything beyond the enumerated
// trip fields.
func decodeTripPatch(raw json.RawMessage) (*db_models.TripPatch, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var patch db_models.TripPatch
	if err := dec.Decode(&patch); err != nil {
		return nil, fmt.Errorf("decode trip patch: %w", err)
	}
	if patch.Empty() {
		return nil, nil
	}
	return &patch, nil
}
