package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	dbm "tourmuse/internal/models/db_models"
	"tourmuse/pkg/utils"
)

type fakeGuideRepo struct {
	guides map[string]*dbm.CityGuide
	err    error
	calls  int
}

func (r *fakeGuideRepo) ByDestination(_ context.Context, destination string) (*dbm.CityGuide, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.guides[strings.ToLower(destination)], nil
}

// TestGuideFromCatalog checks that a seeded destination serves its own row.
func TestGuideFromCatalog(t *testing.T) {
	repo := &fakeGuideRepo{guides: map[string]*dbm.CityGuide{
		"lisbon": {Destination: "Lisbon", VisaInfo: "Schengen rules apply."},
	}}
	svc := NewGuideService(repo)

	guide, err := svc.Guide(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if guide.VisaInfo != "Schengen rules apply." {
		t.Fatalf("guide = %+v", guide)
	}

	// Second read is served from cache.
	if _, err := svc.Guide(context.Background(), "lisbon"); err != nil {
		t.Fatalf("cached Guide() error = %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("catalog hit %d times, want 1", repo.calls)
	}
}

// TestGuideFallsBackToDefaults checks that an unseeded destination still
// renders a complete guide.
func TestGuideFallsBackToDefaults(t *testing.T) {
	svc := NewGuideService(&fakeGuideRepo{})

	guide, err := svc.Guide(context.Background(), "Ulaanbaatar")
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if guide.Destination != "Ulaanbaatar" {
		t.Fatalf("fallback destination = %q", guide.Destination)
	}
	if guide.VisaInfo == "" || guide.PublicTransportTips == "" || len(guide.LocalEvents) == 0 {
		t.Fatalf("fallback guide incomplete: %+v", guide)
	}
}

// TestGuideValidation checks the blank-destination and storage-error paths.
func TestGuideValidation(t *testing.T) {
	if _, err := NewGuideService(&fakeGuideRepo{}).Guide(context.Background(), "  "); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("blank destination error = %v, want ErrInvalidInput", err)
	}
	broken := NewGuideService(&fakeGuideRepo{err: errors.New("connection refused")})
	if _, err := broken.Guide(context.Background(), "Lisbon"); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("storage failure error = %v, want ErrDatabaseError", err)
	}
}

// TestPlaceDetailsStable checks that a place always resolves to the same
// card and that coordinates stay in range.
func TestPlaceDetailsStable(t *testing.T) {
	svc := NewGuideService(&fakeGuideRepo{})

	first, err := svc.PlaceDetails(context.Background(), "National Museum", "Lisbon")
	if err != nil {
		t.Fatalf("PlaceDetails() error = %v", err)
	}
	second, err := svc.PlaceDetails(context.Background(), "national museum", "Lisbon")
	if err != nil {
		t.Fatalf("PlaceDetails() error = %v", err)
	}
	if first.Latitude != second.Latitude || first.Longitude != second.Longitude || first.EntryFee != second.EntryFee {
		t.Fatalf("same place produced different cards: %+v vs %+v", first, second)
	}
	if first.Latitude < -90 || first.Latitude > 90 || first.Longitude < -180 || first.Longitude > 180 {
		t.Fatalf("coordinates out of range: %v, %v", first.Latitude, first.Longitude)
	}

	if _, err := svc.PlaceDetails(context.Background(), " ", "Lisbon"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("blank place error = %v, want ErrInvalidInput", err)
	}
}
