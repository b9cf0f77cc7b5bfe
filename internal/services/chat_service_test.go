package services

import (
	"context"
	"errors"
	"testing"

	dbm "tourmuse/internal/models/db_models"
	"tourmuse/pkg/ai"
)

type fakeAssistant struct {
	reply *ai.ChatReply
	err   error
	trips []*dbm.Trip
}

func (f *fakeAssistant) GenerateItinerary(_ context.Context, _ dbm.TripDraft) (*dbm.Itinerary, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAssistant) Respond(_ context.Context, _ string, trip *dbm.Trip) (*ai.ChatReply, error) {
	f.trips = append(f.trips, trip)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

// TestChatWithoutRemote checks that a missing provider routes every message
// through the scripted matcher and records the exchange.
func TestChatWithoutRemote(t *testing.T) {
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	svc := NewChatService(nil, itineraries)

	answer, err := svc.Respond(context.Background(), "u1", "find me a restaurant")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if answer.Message == "" || len(answer.Suggestions) == 0 {
		t.Fatalf("scripted reply is empty")
	}

	history := svc.History("u1")
	if len(history) != 2 {
		t.Fatalf("history has %d messages, want 2", len(history))
	}
	if history[0].Sender != dbm.SenderUser || history[1].Sender != dbm.SenderAssistant {
		t.Fatalf("history sender order: %s, %s", history[0].Sender, history[1].Sender)
	}
	if history[0].Text != "find me a restaurant" {
		t.Fatalf("user message not recorded verbatim: %q", history[0].Text)
	}
}

// TestChatRemoteFailureDegrades checks that a backend error never reaches the
// user; the scripted matcher answers instead.
func TestChatRemoteFailureDegrades(t *testing.T) {
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	remote := &fakeAssistant{err: errors.New("upstream timeout")}
	svc := NewChatService(remote, itineraries)

	answer, err := svc.Respond(context.Background(), "u1", "what does this cost")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if answer.Message == "" {
		t.Fatalf("degraded reply is empty")
	}
}

// TestChatAppliesPatch checks that an assistant patch lands in the active
// draft through the itinerary store.
func TestChatAppliesPatch(t *testing.T) {
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	if _, err := itineraries.Seed(context.Background(), "u1", testDraft()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	budget := int64(5000)
	remote := &fakeAssistant{reply: &ai.ChatReply{
		Message:   "Budget raised to 5000.",
		TripPatch: &dbm.TripPatch{Budget: &budget},
		Action:    "modify_trip",
	}}
	svc := NewChatService(remote, itineraries)

	answer, err := svc.Respond(context.Background(), "u1", "raise my budget to 5000")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if answer.TripPatch == nil || answer.Action != "modify_trip" {
		t.Fatalf("patch dropped from a valid reply")
	}

	draft, err := itineraries.Draft("u1")
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if draft.Budget != 5000 {
		t.Fatalf("draft budget = %d, want 5000", draft.Budget)
	}

	// The snapshot handed to the assistant reflected the active trip.
	if len(remote.trips) != 1 || remote.trips[0] == nil {
		t.Fatalf("assistant did not receive the trip snapshot")
	}
	if remote.trips[0].Location != "Kyoto" {
		t.Fatalf("snapshot location = %q", remote.trips[0].Location)
	}
}

// TestChatRejectedPatchCleared checks that a patch the store refuses is
// stripped from the reply rather than half-applied.
func TestChatRejectedPatchCleared(t *testing.T) {
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	// No active trip, so any patch is refused.
	badBudget := int64(-10)
	remote := &fakeAssistant{reply: &ai.ChatReply{
		Message:   "Done.",
		TripPatch: &dbm.TripPatch{Budget: &badBudget},
		Action:    "modify_trip",
	}}
	svc := NewChatService(remote, itineraries)

	answer, err := svc.Respond(context.Background(), "u1", "change my budget")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if answer.TripPatch != nil || answer.Action != "" {
		t.Fatalf("rejected patch survived in the reply")
	}
}

// TestChatHistoryIsolated checks per-user conversations and that History
// hands out copies.
func TestChatHistoryIsolated(t *testing.T) {
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	svc := NewChatService(nil, itineraries)

	if _, err := svc.Respond(context.Background(), "u1", "hello"); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if got := svc.History("u2"); len(got) != 0 {
		t.Fatalf("u2 sees %d of u1's messages", len(got))
	}

	history := svc.History("u1")
	history[0].Text = "tampered"
	if svc.History("u1")[0].Text == "tampered" {
		t.Fatalf("History() exposes internal storage")
	}
}
