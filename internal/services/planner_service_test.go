package services

import (
	"context"
	"errors"
	"testing"
	"time"

	req "tourmuse/internal/models/request_models"
	resp "tourmuse/internal/models/response_models"
	"tourmuse/internal/repositories"
	"tourmuse/pkg/utils"
)

func newTestPlanner() (PlannerServiceInterface, ItineraryServiceInterface, *repositories.MemoryStaging) {
	staging := repositories.NewMemoryStaging(time.Minute)
	itineraries := NewItineraryService(NewLocalGenerator(), nil)
	return NewPlannerService(staging, itineraries), itineraries, staging
}

func validSubmit() req.SubmitPlanRequest {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	return req.SubmitPlanRequest{
		Location:    "Lisbon",
		StartDate:   &start,
		EndDate:     &end,
		Budget:      1500,
		TravelStyle: "cultural",
	}
}

// TestSubmitValidation walks the form rules; every invalid submission must
// be rejected before anything is staged or seeded.
func TestSubmitValidation(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	cases := []struct {
		name   string
		mutate func(r *req.SubmitPlanRequest)
	}{
		{"empty location", func(r *req.SubmitPlanRequest) { r.Location = "   " }},
		{"missing start date", func(r *req.SubmitPlanRequest) { r.StartDate = nil }},
		{"missing end date", func(r *req.SubmitPlanRequest) { r.EndDate = nil }},
		{"end before start", func(r *req.SubmitPlanRequest) { r.StartDate = &end; r.EndDate = &start }},
		{"zero budget", func(r *req.SubmitPlanRequest) { r.Budget = 0 }},
		{"negative budget", func(r *req.SubmitPlanRequest) { r.Budget = -100 }},
		{"unknown style", func(r *req.SubmitPlanRequest) { r.TravelStyle = "extreme" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			planner, itineraries, _ := newTestPlanner()
			request := validSubmit()
			tc.mutate(&request)

			_, err := planner.Submit(context.Background(), "u1", true, request)
			if !errors.Is(err, utils.ErrInvalidInput) {
				t.Fatalf("Submit() error = %v, want ErrInvalidInput", err)
			}
			if _, getErr := itineraries.Draft("u1"); !errors.Is(getErr, utils.ErrNoActiveTrip) {
				t.Fatalf("invalid submission seeded an active trip")
			}
		})
	}
}

// TestSubmitAuthenticated checks that a logged-in submission goes straight to
// the itinerary.
func TestSubmitAuthenticated(t *testing.T) {
	planner, itineraries, _ := newTestPlanner()

	result, err := planner.Submit(context.Background(), "u1", true, validSubmit())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Next != resp.NextItinerary {
		t.Fatalf("Next = %q, want %q", result.Next, resp.NextItinerary)
	}

	it, busy, err := itineraries.Get("u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if busy {
		t.Fatalf("fresh trip marked busy")
	}
	if len(it.Days) != 4 {
		t.Fatalf("itinerary has %d days, want 4 (inclusive range)", len(it.Days))
	}
}

// TestSubmitAnonymousStages checks the auth side-gate: an anonymous
// submission is staged, not seeded, and resumes exactly once after login.
func TestSubmitAnonymousStages(t *testing.T) {
	planner, itineraries, _ := newTestPlanner()

	result, err := planner.Submit(context.Background(), "", false, validSubmit())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Next != resp.NextAuth {
		t.Fatalf("Next = %q, want %q", result.Next, resp.NextAuth)
	}
	if result.Draft == nil || result.Draft.ID == "" {
		t.Fatalf("staged submission returned no draft ID")
	}
	if _, _, err := itineraries.Get("u1"); !errors.Is(err, utils.ErrNoActiveTrip) {
		t.Fatalf("anonymous submission seeded an itinerary")
	}

	it, draft, err := planner.Resume(context.Background(), "u1", result.Draft.ID)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if draft.Location != "Lisbon" {
		t.Fatalf("resumed draft location = %q", draft.Location)
	}
	if len(it.Days) == 0 {
		t.Fatalf("resume produced empty itinerary")
	}

	// The slot is consume-once.
	if _, _, err := planner.Resume(context.Background(), "u1", result.Draft.ID); !errors.Is(err, utils.ErrDraftNotFound) {
		t.Fatalf("second Resume() error = %v, want ErrDraftNotFound", err)
	}
}

// TestResumeUnknownDraft checks that a stale or bogus draft ID resolves to
// not-found rather than an empty trip.
func TestResumeUnknownDraft(t *testing.T) {
	planner, _, _ := newTestPlanner()
	if _, _, err := planner.Resume(context.Background(), "u1", "nope"); !errors.Is(err, utils.ErrDraftNotFound) {
		t.Fatalf("Resume() error = %v, want ErrDraftNotFound", err)
	}
}
