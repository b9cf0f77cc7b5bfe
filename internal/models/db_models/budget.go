package db_models

type HotelTier string

const (
	TierBudget   HotelTier = "budget"
	TierMidRange HotelTier = "mid-range"
	TierLuxury   HotelTier = "luxury"
)

func (t HotelTier) Valid() bool {
	switch t {
	case TierBudget, TierMidRange, TierLuxury:
		return true
	}
	return false
}

// TierMultiplier is the fixed accommodation scalar per hotel class.
func TierMultiplier(t HotelTier) (float64, bool) {
	switch t {
	case TierBudget:
		return 0.7, true
	case TierMidRange:
		return 1.0, true
	case TierLuxury:
		return 1.8, true
	}
	return 0, false
}

const (
	CategoryAccommodation = "accommodation"
	CategoryMeals         = "meals"
	CategoryTransport     = "transport"
	CategoryActivities    = "activities"
	CategoryShopping      = "shopping"
)

// BudgetBreakdown maps spending categories to non-negative amounts.
// BaseAccommodation keeps the pre-tier accommodation amount so that tier
// switches always rescale from the same base instead of compounding.
type BudgetBreakdown struct {
	Categories        map[string]float64 `json:"categories" bson:"categories"`
	BaseAccommodation float64            `json:"baseAccommodation" bson:"baseAccommodation"`
	Tier              HotelTier          `json:"tier" bson:"tier"`
}

func NewBudgetBreakdown(categories map[string]float64) *BudgetBreakdown {
	cp := make(map[string]float64, len(categories))
	for k, v := range categories {
		cp[k] = v
	}
	return &BudgetBreakdown{
		Categories:        cp,
		BaseAccommodation: cp[CategoryAccommodation],
		Tier:              TierMidRange,
	}
}

// Clone returns an independent copy, safe to read outside the owner's lock.
func (b *BudgetBreakdown) Clone() *BudgetBreakdown {
	cp := make(map[string]float64, len(b.Categories))
	for k, v := range b.Categories {
		cp[k] = v
	}
	return &BudgetBreakdown{
		Categories:        cp,
		BaseAccommodation: b.BaseAccommodation,
		Tier:              b.Tier,
	}
}

// SetTier rescales the accommodation category only, from the remembered base.
func (b *BudgetBreakdown) SetTier(t HotelTier) bool {
	mult, ok := TierMultiplier(t)
	if !ok {
		return false
	}
	b.Tier = t
	b.Categories[CategoryAccommodation] = b.BaseAccommodation * mult
	return true
}

// Total is recomputed on every read.
func (b *BudgetBreakdown) Total() float64 {
	var sum float64
	for _, v := range b.Categories {
		sum += v
	}
	return sum
}
