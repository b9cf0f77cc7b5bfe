package services

import (
	"context"

	dbm "tourmuse/internal/models/db_models"
	req "tourmuse/internal/models/request_models"
	"tourmuse/internal/repositories"
	"tourmuse/pkg/logger"
	"tourmuse/pkg/utils"
)

// TripServiceInterface is the persistence gateway. Confirm moves the active
// trip into durable storage; the remaining operations are user-scoped CRUD
// over the trips collection.
type TripServiceInterface interface {
	Confirm(ctx context.Context, userID string) (string, error)
	List(ctx context.Context, userID string, status string) ([]dbm.Trip, error)
	Recent(ctx context.Context, userID string, limit int) ([]dbm.Trip, error)
	Get(ctx context.Context, userID string, tripID string) (*dbm.Trip, error)
	Update(ctx context.Context, userID string, tripID string, update req.UpdateTripRequest) error
	SetStatus(ctx context.Context, userID string, tripID string, status string) error
	Delete(ctx context.Context, userID string, tripID string) error
}

type TripService struct {
	trips       repositories.TripRepository
	itineraries ItineraryServiceInterface
}

func NewTripService(trips repositories.TripRepository, itineraries ItineraryServiceInterface) TripServiceInterface {
	return &TripService{
		trips:       trips,
		itineraries: itineraries,
	}
}

// Confirm persists the active draft and itinerary. Blocked while a replan is
// in flight so a half-replaced plan is never written.
func (s *TripService) Confirm(ctx context.Context, userID string) (string, error) {
	active, err := s.itineraries.TakeForConfirm(userID)
	if err != nil {
		return "", err
	}

	trip := &dbm.Trip{
		UserID:            userID,
		Location:          active.Draft.Location,
		StartDate:         active.Draft.StartDate,
		EndDate:           active.Draft.EndDate,
		Budget:            active.Draft.Budget,
		TravelStyle:       active.Draft.TravelStyle,
		EcoFriendly:       active.Draft.EcoFriendly,
		DynamicReplanning: active.Draft.DynamicReplanning,
		Itinerary:         active.Itinerary,
		Budgets:           active.Breakdown,
	}

	tripID, err := s.trips.Create(ctx, trip)
	if err != nil {
		logger.Log.WithError(err).Error("failed to create trip")
		return "", utils.ErrDatabaseError
	}
	return tripID, nil
}

func (s *TripService) List(ctx context.Context, userID string, status string) ([]dbm.Trip, error) {
	filter := dbm.TripStatus(status)
	if status != "" && !filter.Valid() {
		return nil, utils.ErrInvalidStatus
	}

	trips, err := s.trips.List(ctx, userID, filter)
	if err != nil {
		logger.Log.WithError(err).Error("failed to list trips")
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) Recent(ctx context.Context, userID string, limit int) ([]dbm.Trip, error) {
	trips, err := s.trips.Recent(ctx, userID, limit)
	if err != nil {
		logger.Log.WithError(err).Error("failed to list recent trips")
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

// owned fetches a trip and hides other users' records behind not-found.
func (s *TripService) owned(ctx context.Context, userID string, tripID string) (*dbm.Trip, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		logger.Log.WithError(err).Error("failed to get trip")
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) Get(ctx context.Context, userID string, tripID string) (*dbm.Trip, error) {
	return s.owned(ctx, userID, tripID)
}

func (s *TripService) Update(ctx context.Context, userID string, tripID string, update req.UpdateTripRequest) error {
	if update.Budget != nil && *update.Budget <= 0 {
		return utils.ErrInvalidInput
	}
	if update.TravelStyle != nil && !dbm.TravelStyle(*update.TravelStyle).Valid() {
		return utils.ErrInvalidInput
	}

	trip, err := s.owned(ctx, userID, tripID)
	if err != nil {
		return err
	}

	// A single patched date still has to line up with the stored one.
	start, end := trip.StartDate, trip.EndDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	if update.EndDate != nil {
		end = *update.EndDate
	}
	if start.After(end) {
		return utils.ErrInvalidInput
	}
	if err := s.trips.Update(ctx, tripID, &update); err != nil {
		logger.Log.WithError(err).Error("failed to update trip")
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) SetStatus(ctx context.Context, userID string, tripID string, status string) error {
	next := dbm.TripStatus(status)
	if !next.Valid() {
		return utils.ErrInvalidStatus
	}

	if _, err := s.owned(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.trips.SetStatus(ctx, tripID, next); err != nil {
		logger.Log.WithError(err).Error("failed to update trip status")
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) Delete(ctx context.Context, userID string, tripID string) error {
	if _, err := s.owned(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		logger.Log.WithError(err).Error("failed to delete trip")
		return utils.ErrDatabaseError
	}
	return nil
}
