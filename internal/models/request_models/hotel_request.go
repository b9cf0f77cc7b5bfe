package request_models

// HotelSearchRequest is bound from query parameters on the hotel browser.
type HotelSearchRequest struct {
	Tier      string   `form:"tier"`
	MinPrice  float64  `form:"minPrice"`
	MaxPrice  float64  `form:"maxPrice"`
	Amenities []string `form:"amenities"`
	EcoOnly   bool     `form:"eco"`
	Query     string   `form:"q"`
	SortBy    string   `form:"sortBy"`
}
