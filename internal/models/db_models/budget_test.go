package db_models

import (
	"math"
	"testing"
)

// TestTierMultiplier checks the fixed accommodation scalars per hotel class.
func TestTierMultiplier(t *testing.T) {
	cases := []struct {
		tier HotelTier
		want float64
		ok   bool
	}{
		{TierBudget, 0.7, true},
		{TierMidRange, 1.0, true},
		{TierLuxury, 1.8, true},
		{HotelTier("premium"), 0, false},
		{HotelTier(""), 0, false},
	}

	for _, tc := range cases {
		got, ok := TierMultiplier(tc.tier)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("TierMultiplier(%q) = %v, %v; want %v, %v", tc.tier, got, ok, tc.want, tc.ok)
		}
	}
}

// TestSetTierRescalesFromBase checks that repeated tier switches never
// compound: luxury twice in a row scales the original base once.
func TestSetTierRescalesFromBase(t *testing.T) {
	b := NewBudgetBreakdown(map[string]float64{
		CategoryAccommodation: 400,
		CategoryMeals:         200,
	})

	if !b.SetTier(TierLuxury) {
		t.Fatalf("SetTier(luxury) rejected")
	}
	if !b.SetTier(TierLuxury) {
		t.Fatalf("second SetTier(luxury) rejected")
	}
	if got := b.Categories[CategoryAccommodation]; got != 400*1.8 {
		t.Fatalf("accommodation after double luxury = %v, want %v", got, 400*1.8)
	}

	if !b.SetTier(TierBudget) {
		t.Fatalf("SetTier(budget) rejected")
	}
	if got := b.Categories[CategoryAccommodation]; math.Abs(got-400*0.7) > 1e-9 {
		t.Fatalf("accommodation after budget = %v, want %v", got, 400*0.7)
	}
	if got := b.Categories[CategoryMeals]; got != 200 {
		t.Fatalf("meals changed by tier switch: %v", got)
	}
}

// TestSetTierRejectsUnknown checks that an unknown tier changes nothing.
func TestSetTierRejectsUnknown(t *testing.T) {
	b := NewBudgetBreakdown(map[string]float64{CategoryAccommodation: 100})
	if b.SetTier(HotelTier("gold")) {
		t.Fatalf("unknown tier accepted")
	}
	if b.Tier != TierMidRange {
		t.Fatalf("tier changed on rejection: %q", b.Tier)
	}
	if b.Categories[CategoryAccommodation] != 100 {
		t.Fatalf("accommodation changed on rejection")
	}
}

// TestBreakdownTotal checks that the total is the live sum of categories.
func TestBreakdownTotal(t *testing.T) {
	b := NewBudgetBreakdown(map[string]float64{
		CategoryAccommodation: 400,
		CategoryMeals:         200,
		CategoryTransport:     150,
	})
	if got := b.Total(); got != 750 {
		t.Fatalf("Total() = %v, want 750", got)
	}

	b.SetTier(TierLuxury)
	if got := b.Total(); got != 400*1.8+200+150 {
		t.Fatalf("Total() after luxury = %v, want %v", got, 400*1.8+200+150)
	}
}
