package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	dbm "tourmuse/internal/models/db_models"
	"tourmuse/pkg/ai"
	"tourmuse/pkg/logger"
	"tourmuse/pkg/utils"
)

// ActiveTrip is everything the user is currently editing: the draft they
// submitted, the generated itinerary, and the working budget breakdown.
type ActiveTrip struct {
	Draft     dbm.TripDraft
	Itinerary *dbm.Itinerary
	Breakdown *dbm.BudgetBreakdown
}

// ItineraryServiceInterface is the store for the active itinerary. It is the
// only writer of active-trip state; budget and chat mutations go through its
// methods rather than touching shared data.
type ItineraryServiceInterface interface {
	Seed(ctx context.Context, userID string, draft dbm.TripDraft) (*dbm.Itinerary, error)
	Get(userID string) (*dbm.Itinerary, bool, error)
	Replan(ctx context.Context, userID string) (*dbm.Itinerary, error)
	Busy(userID string) bool
	Draft(userID string) (*dbm.TripDraft, error)
	ApplyPatch(userID string, patch *dbm.TripPatch) (*dbm.TripDraft, error)
	Breakdown(userID string) (*dbm.BudgetBreakdown, int64, error)
	SetTier(userID string, tier dbm.HotelTier) (*dbm.BudgetBreakdown, int64, error)
	Snapshot(userID string) *dbm.Trip
	TakeForConfirm(userID string) (*ActiveTrip, error)
}

type ItineraryService struct {
	generator ItineraryGenerator
	remote    ai.Client // nil when no provider is configured

	mu     sync.Mutex
	active map[string]*ActiveTrip
	busy   map[string]bool

	replans singleflight.Group
}

func NewItineraryService(generator ItineraryGenerator, remote ai.Client) ItineraryServiceInterface {
	return &ItineraryService{
		generator: generator,
		remote:    remote,
		active:    make(map[string]*ActiveTrip),
		busy:      make(map[string]bool),
	}
}

// Default split of the declared budget across categories.
var defaultShares = map[string]float64{
	dbm.CategoryAccommodation: 0.40,
	dbm.CategoryMeals:         0.20,
	dbm.CategoryTransport:     0.15,
	dbm.CategoryActivities:    0.15,
	dbm.CategoryShopping:      0.10,
}

func defaultBreakdown(budget int64) *dbm.BudgetBreakdown {
	categories := make(map[string]float64, len(defaultShares))
	for category, share := range defaultShares {
		categories[category] = float64(budget) * share
	}
	return dbm.NewBudgetBreakdown(categories)
}

// generate prefers the remote planner and falls back to the local one on any
// failure. Both produce the same document shape.
func (s *ItineraryService) generate(ctx context.Context, draft dbm.TripDraft) (*dbm.Itinerary, error) {
	if s.remote != nil {
		it, err := s.remote.GenerateItinerary(ctx, draft)
		if err == nil {
			return it, nil
		}
		logger.Log.WithError(err).Warn("remote planner failed, using local generator")
	}
	return s.generator.Generate(ctx, draft)
}

func (s *ItineraryService) Seed(ctx context.Context, userID string, draft dbm.TripDraft) (*dbm.Itinerary, error) {
	it, err := s.generate(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.active[userID] = &ActiveTrip{
		Draft:     draft,
		Itinerary: it,
		Breakdown: defaultBreakdown(draft.Budget),
	}
	s.mu.Unlock()

	return it, nil
}

func (s *ItineraryService) Get(userID string) (*dbm.Itinerary, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil, false, utils.ErrNoActiveTrip
	}
	return trip.Itinerary, s.busy[userID], nil
}

func (s *ItineraryService) Busy(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[userID]
}

// Replan replaces the itinerary wholesale. Concurrent replans for the same
// user coalesce onto one generation; the busy flag is visible while it runs.
func (s *ItineraryService) Replan(ctx context.Context, userID string) (*dbm.Itinerary, error) {
	s.mu.Lock()
	trip, ok := s.active[userID]
	if !ok {
		s.mu.Unlock()
		return nil, utils.ErrNoActiveTrip
	}
	draft := trip.Draft
	s.busy[userID] = true
	s.mu.Unlock()

	result, err, _ := s.replans.Do(userID, func() (interface{}, error) {
		defer func() {
			s.mu.Lock()
			delete(s.busy, userID)
			s.mu.Unlock()
		}()

		it, err := s.generate(ctx, draft)
		if err != nil {
			return nil, err
		}
		it.LastUpdated = time.Now().UTC()

		s.mu.Lock()
		if current, ok := s.active[userID]; ok {
			current.Itinerary = it
		}
		s.mu.Unlock()
		return it, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbm.Itinerary), nil
}

func (s *ItineraryService) Draft(userID string) (*dbm.TripDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil, utils.ErrNoActiveTrip
	}
	draft := trip.Draft
	return &draft, nil
}

// ApplyPatch mutates the active draft through the store's lock. The patch is
// validated as a whole against the effective draft before anything is
// written, so a rejected patch changes nothing. Budget changes refresh the
// breakdown base; the itinerary itself is only refreshed by an explicit
// replan.
func (s *ItineraryService) ApplyPatch(userID string, patch *dbm.TripPatch) (*dbm.TripDraft, error) {
	if patch.Empty() {
		return nil, utils.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil, utils.ErrNoActiveTrip
	}

	next := trip.Draft
	if patch.Location != nil {
		if strings.TrimSpace(*patch.Location) == "" {
			return nil, utils.ErrInvalidInput
		}
		next.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.StartDate != nil {
		next.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		next.EndDate = *patch.EndDate
	}
	if next.StartDate.After(next.EndDate) {
		return nil, utils.ErrInvalidInput
	}
	if patch.TravelStyle != nil {
		if !patch.TravelStyle.Valid() {
			return nil, utils.ErrInvalidInput
		}
		next.TravelStyle = *patch.TravelStyle
	}
	if patch.Budget != nil {
		if *patch.Budget <= 0 {
			return nil, utils.ErrInvalidInput
		}
		next.Budget = *patch.Budget
	}

	if next.Budget != trip.Draft.Budget {
		tier := trip.Breakdown.Tier
		trip.Breakdown = defaultBreakdown(next.Budget)
		trip.Breakdown.SetTier(tier)
	}
	trip.Draft = next

	draft := next
	return &draft, nil
}

// Breakdown returns a copy; the live breakdown never leaves the lock.
func (s *ItineraryService) Breakdown(userID string) (*dbm.BudgetBreakdown, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil, 0, utils.ErrNoActiveTrip
	}
	return trip.Breakdown.Clone(), trip.Draft.Budget, nil
}

func (s *ItineraryService) SetTier(userID string, tier dbm.HotelTier) (*dbm.BudgetBreakdown, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil, 0, utils.ErrNoActiveTrip
	}
	if !trip.Breakdown.SetTier(tier) {
		return nil, 0, utils.ErrInvalidTier
	}
	return trip.Breakdown.Clone(), trip.Draft.Budget, nil
}

// Snapshot returns a read-only trip view for the chat assistant's context,
// or nil when nothing is active.
func (s *ItineraryService) Snapshot(userID string) *dbm.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[userID]
	if !ok {
		return nil
	}
	return &dbm.Trip{
		UserID:            userID,
		Location:          trip.Draft.Location,
		StartDate:         trip.Draft.StartDate,
		EndDate:           trip.Draft.EndDate,
		Budget:            trip.Draft.Budget,
		TravelStyle:       trip.Draft.TravelStyle,
		EcoFriendly:       trip.Draft.EcoFriendly,
		DynamicReplanning: trip.Draft.DynamicReplanning,
		Itinerary:         trip.Itinerary,
	}
}

// TakeForConfirm hands the active trip to the persistence gateway and clears
// the slot. Confirmation is blocked while a replan is in flight.
func (s *ItineraryService) TakeForConfirm(userID string) (*ActiveTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy[userID] {
		return nil, utils.ErrReplanInFlight
	}
	trip, ok := s.active[userID]
	if !ok {
		return nil, utils.ErrNoActiveTrip
	}
	delete(s.active, userID)
	return trip, nil
}
