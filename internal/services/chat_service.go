package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	dbm "tourmuse/internal/models/db_models"
	resp "tourmuse/internal/models/response_models"
	"tourmuse/pkg/ai"
	"tourmuse/pkg/logger"
)

// ChatServiceInterface answers one message at a time. The remote assistant
// goes first; any failure degrades silently to the scripted matcher, so a
// backend outage never reaches the user as an error.
type ChatServiceInterface interface {
	Respond(ctx context.Context, userID string, message string) (*resp.ChatResponse, error)
	History(userID string) []dbm.ChatMessage
}

type ChatService struct {
	remote      ai.Client // nil when no provider is configured
	itineraries ItineraryServiceInterface

	flight singleflight.Group

	mu            sync.Mutex
	conversations map[string][]dbm.ChatMessage
}

func NewChatService(remote ai.Client, itineraries ItineraryServiceInterface) ChatServiceInterface {
	return &ChatService{
		remote:        remote,
		itineraries:   itineraries,
		conversations: make(map[string][]dbm.ChatMessage),
	}
}

func (s *ChatService) append(userID string, msg dbm.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[userID] = append(s.conversations[userID], msg)
}

// History returns a copy; stored messages are never mutated.
func (s *ChatService) History(userID string) []dbm.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.conversations[userID]
	out := make([]dbm.ChatMessage, len(history))
	copy(out, history)
	return out
}

func (s *ChatService) Respond(ctx context.Context, userID string, message string) (*resp.ChatResponse, error) {
	s.append(userID, dbm.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    dbm.SenderUser,
		Text:      message,
		Timestamp: time.Now().UTC(),
	})

	trip := s.itineraries.Snapshot(userID)
	answer := s.answer(ctx, userID, message, trip)

	// A returned patch flows through the itinerary store, the single writer
	// of active-trip state.
	if answer.TripPatch != nil {
		if _, err := s.itineraries.ApplyPatch(userID, answer.TripPatch); err != nil {
			logger.Log.WithError(err).Warn("chat trip patch rejected")
			answer.TripPatch = nil
			answer.Action = ""
		}
	}

	s.append(userID, dbm.ChatMessage{
		ID:          uuid.New().String(),
		Sender:      dbm.SenderAssistant,
		Text:        answer.Message,
		Timestamp:   time.Now().UTC(),
		Suggestions: answer.Suggestions,
		TripPatch:   answer.TripPatch,
	})
	return answer, nil
}

// answer tries the remote assistant under a per-user single-flight guard and
// falls back to the scripted matcher.
func (s *ChatService) answer(ctx context.Context, userID string, message string, trip *dbm.Trip) *resp.ChatResponse {
	if s.remote == nil {
		return fallbackRespond(message)
	}

	result, err, _ := s.flight.Do(userID, func() (interface{}, error) {
		return s.remote.Respond(ctx, message, trip)
	})
	if err != nil {
		logger.Log.WithError(err).Warn("chat backend failed, using scripted fallback")
		return fallbackRespond(message)
	}

	reply := result.(*ai.ChatReply)
	return &resp.ChatResponse{
		Message:     reply.Message,
		Suggestions: reply.Suggestions,
		TripPatch:   reply.TripPatch,
		Action:      reply.Action,
	}
}
