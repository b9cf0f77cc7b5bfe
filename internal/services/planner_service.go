package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	dbm "tourmuse/internal/models/db_models"
	req "tourmuse/internal/models/request_models"
	resp "tourmuse/internal/models/response_models"
	"tourmuse/internal/repositories"
	"tourmuse/pkg/utils"
)

// PlannerServiceInterface turns form submissions into drafts. Authentication
// is a side-gate on trip creation: anyone may submit the form, but an
// unauthenticated submission is staged for post-login resumption instead of
// going straight to the itinerary.
type PlannerServiceInterface interface {
	Submit(ctx context.Context, userID string, authenticated bool, request req.SubmitPlanRequest) (*resp.SubmitPlanResponse, error)
	Resume(ctx context.Context, userID string, draftID string) (*dbm.Itinerary, *dbm.TripDraft, error)
}

type PlannerService struct {
	staging     repositories.DraftStaging
	itineraries ItineraryServiceInterface
}

func NewPlannerService(staging repositories.DraftStaging, itineraries ItineraryServiceInterface) PlannerServiceInterface {
	return &PlannerService{
		staging:     staging,
		itineraries: itineraries,
	}
}

// validate applies the form rules: non-empty destination, both dates present
// with start ≤ end, positive budget, known travel style. An invalid
// submission changes nothing.
func validateDraft(request req.SubmitPlanRequest) error {
	if strings.TrimSpace(request.Location) == "" {
		return utils.ErrInvalidInput
	}
	if request.StartDate == nil || request.EndDate == nil {
		return utils.ErrInvalidInput
	}
	if request.StartDate.After(*request.EndDate) {
		return utils.ErrInvalidInput
	}
	if request.Budget <= 0 {
		return utils.ErrInvalidInput
	}
	if !dbm.TravelStyle(request.TravelStyle).Valid() {
		return utils.ErrInvalidInput
	}
	return nil
}

func (s *PlannerService) Submit(ctx context.Context, userID string, authenticated bool, request req.SubmitPlanRequest) (*resp.SubmitPlanResponse, error) {
	if err := validateDraft(request); err != nil {
		return nil, err
	}

	draft := dbm.TripDraft{
		ID:                strconv.FormatInt(time.Now().UnixNano(), 10),
		Location:          strings.TrimSpace(request.Location),
		StartDate:         *request.StartDate,
		EndDate:           *request.EndDate,
		Budget:            request.Budget,
		TravelStyle:       dbm.TravelStyle(request.TravelStyle),
		EcoFriendly:       request.EcoFriendly,
		DynamicReplanning: request.DynamicReplanning,
		CreatedAt:         time.Now().UTC(),
	}

	if !authenticated {
		pending := &repositories.PendingDraft{
			Draft:    draft,
			Redirect: "/itinerary",
		}
		if err := s.staging.Stage(ctx, draft.ID, pending); err != nil {
			return nil, err
		}
		return &resp.SubmitPlanResponse{Next: resp.NextAuth, Draft: &draft}, nil
	}

	if _, err := s.itineraries.Seed(ctx, userID, draft); err != nil {
		return nil, err
	}
	return &resp.SubmitPlanResponse{Next: resp.NextItinerary, Draft: &draft}, nil
}

// Resume consumes a staged draft after login and seeds the itinerary. The
// staged entry is gone afterwards; a second resume finds nothing.
func (s *PlannerService) Resume(ctx context.Context, userID string, draftID string) (*dbm.Itinerary, *dbm.TripDraft, error) {
	pending, err := s.staging.Consume(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if pending == nil {
		return nil, nil, utils.ErrDraftNotFound
	}

	it, err := s.itineraries.Seed(ctx, userID, pending.Draft)
	if err != nil {
		return nil, nil, err
	}
	draft := pending.Draft
	return it, &draft, nil
}
