package db_models

import (
	"testing"
	"time"
)

// TestNormalizeOrders checks that days sort chronologically and activities
// sort by their time-of-day string.
func TestNormalizeOrders(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	it := Itinerary{
		Days: []ItineraryDay{
			{
				Date: day2,
				Activities: []Activity{
					{Name: "Dinner", Time: "19:00"},
					{Name: "Museum", Time: "09:30"},
				},
			},
			{
				Date: day1,
				Activities: []Activity{
					{Name: "Old town walk", Time: "14:00"},
					{Name: "Breakfast", Time: "08:00"},
				},
			},
		},
	}

	it.Normalize()

	if !it.Days[0].Date.Equal(day1) {
		t.Fatalf("first day is %v, want %v", it.Days[0].Date, day1)
	}
	if got := it.Days[0].Activities[0].Name; got != "Breakfast" {
		t.Fatalf("first activity of day one = %q, want Breakfast", got)
	}
	if got := it.Days[1].Activities[0].Name; got != "Museum" {
		t.Fatalf("first activity of day two = %q, want Museum", got)
	}
}

// TestTotalCost checks that activity, transport and entry costs all count.
func TestTotalCost(t *testing.T) {
	it := Itinerary{
		Days: []ItineraryDay{
			{Activities: []Activity{
				{Cost: 20, TransportCost: 5, EntryFee: 12},
				{Cost: 30},
			}},
			{Activities: []Activity{
				{Cost: 10, EntryFee: 8},
			}},
		},
	}
	if got := it.TotalCost(); got != 85 {
		t.Fatalf("TotalCost() = %v, want 85", got)
	}
}

// TestTripPatchEmpty checks the nil and zero-field cases.
func TestTripPatchEmpty(t *testing.T) {
	var nilPatch *TripPatch
	if !nilPatch.Empty() {
		t.Fatalf("nil patch reported non-empty")
	}
	if !(&TripPatch{}).Empty() {
		t.Fatalf("zero patch reported non-empty")
	}
	budget := int64(500)
	if (&TripPatch{Budget: &budget}).Empty() {
		t.Fatalf("budget patch reported empty")
	}
}
