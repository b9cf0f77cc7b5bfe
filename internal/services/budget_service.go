package services

import (
	dbm "tourmuse/internal/models/db_models"
	resp "tourmuse/internal/models/response_models"
	"tourmuse/pkg/utils"
)

// BudgetServiceInterface exposes the budget allocator over the active trip's
// breakdown. All state lives in the itinerary store; this layer shapes it.
type BudgetServiceInterface interface {
	Summary(userID string) (*resp.BudgetSummary, error)
	SetTier(userID string, tier string) (*resp.BudgetSummary, error)
	Optimize(category string) (*resp.OptimizeBudgetResponse, error)
}

type BudgetService struct {
	itineraries ItineraryServiceInterface
}

func NewBudgetService(itineraries ItineraryServiceInterface) BudgetServiceInterface {
	return &BudgetService{itineraries: itineraries}
}

func summarize(breakdown *dbm.BudgetBreakdown, cap int64) *resp.BudgetSummary {
	categories := make(map[string]float64, len(breakdown.Categories))
	for k, v := range breakdown.Categories {
		categories[k] = v
	}
	total := breakdown.Total()
	return &resp.BudgetSummary{
		Categories: categories,
		Tier:       string(breakdown.Tier),
		Total:      total,
		Cap:        cap,
		WithinCap:  total <= float64(cap),
	}
}

func (s *BudgetService) Summary(userID string) (*resp.BudgetSummary, error) {
	breakdown, cap, err := s.itineraries.Breakdown(userID)
	if err != nil {
		return nil, err
	}
	return summarize(breakdown, cap), nil
}

func (s *BudgetService) SetTier(userID string, tier string) (*resp.BudgetSummary, error) {
	breakdown, cap, err := s.itineraries.SetTier(userID, dbm.HotelTier(tier))
	if err != nil {
		return nil, err
	}
	return summarize(breakdown, cap), nil
}

var optimizeSuggestions = map[string][]string{
	dbm.CategoryAccommodation: {
		"Switch to a budget-tier hotel for part of the stay",
		"Look at guesthouses outside the city center",
		"Book longer stays for weekly discounts",
	},
	dbm.CategoryMeals: {
		"Swap one restaurant meal a day for street food",
		"Pick accommodation with breakfast included",
		"Shop local markets for picnic lunches",
	},
	dbm.CategoryTransport: {
		"Use a multi-day public transport pass",
		"Group far-apart sights into the same day",
		"Walk between old-town stops instead of taxis",
	},
	dbm.CategoryActivities: {
		"Mix in free museums and city walking routes",
		"Book combination tickets for nearby attractions",
		"Check for free-entry days and evening discounts",
	},
	dbm.CategoryShopping: {
		"Set a daily souvenir allowance",
		"Buy at markets rather than airport shops",
	},
}

func (s *BudgetService) Optimize(category string) (*resp.OptimizeBudgetResponse, error) {
	suggestions, ok := optimizeSuggestions[category]
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	return &resp.OptimizeBudgetResponse{
		Category:    category,
		Suggestions: suggestions,
	}, nil
}
