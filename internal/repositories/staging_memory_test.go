package repositories

import (
	"context"
	"testing"
	"time"

	dbm "tourmuse/internal/models/db_models"
)

func pendingFixture() *PendingDraft {
	return &PendingDraft{
		Draft: dbm.TripDraft{
			ID:       "d1",
			Location: "Lisbon",
			Budget:   1500,
		},
		Redirect: "/itinerary",
	}
}

// TestMemoryStagingConsumeOnce checks the write-once-read-once contract.
func TestMemoryStagingConsumeOnce(t *testing.T) {
	staging := NewMemoryStaging(time.Minute)
	ctx := context.Background()

	if err := staging.Stage(ctx, "d1", pendingFixture()); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	got, err := staging.Consume(ctx, "d1")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if got == nil || got.Draft.Location != "Lisbon" || got.Redirect != "/itinerary" {
		t.Fatalf("consumed draft = %+v", got)
	}

	again, err := staging.Consume(ctx, "d1")
	if err != nil {
		t.Fatalf("second Consume() error = %v", err)
	}
	if again != nil {
		t.Fatalf("slot yielded a draft twice")
	}
}

// TestMemoryStagingUnknownKey checks that a missing slot reads as empty, not
// as an error.
func TestMemoryStagingUnknownKey(t *testing.T) {
	staging := NewMemoryStaging(time.Minute)
	got, err := staging.Consume(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if got != nil {
		t.Fatalf("unknown key yielded %+v", got)
	}
}

// TestMemoryStagingExpiry checks that stale entries are gone after the TTL.
func TestMemoryStagingExpiry(t *testing.T) {
	staging := NewMemoryStaging(10 * time.Millisecond)
	ctx := context.Background()

	if err := staging.Stage(ctx, "d1", pendingFixture()); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	time.Sleep(25 * time.Millisecond)

	got, err := staging.Consume(ctx, "d1")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if got != nil {
		t.Fatalf("expired draft still served")
	}
}

// TestMemoryStagingOverwrite checks that re-staging the same key replaces the
// pending draft.
func TestMemoryStagingOverwrite(t *testing.T) {
	staging := NewMemoryStaging(time.Minute)
	ctx := context.Background()

	if err := staging.Stage(ctx, "d1", pendingFixture()); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	updated := pendingFixture()
	updated.Draft.Budget = 9000
	if err := staging.Stage(ctx, "d1", updated); err != nil {
		t.Fatalf("second Stage() error = %v", err)
	}

	got, err := staging.Consume(ctx, "d1")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if got.Draft.Budget != 9000 {
		t.Fatalf("consumed budget = %d, want the re-staged value", got.Draft.Budget)
	}
}
