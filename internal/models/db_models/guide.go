package db_models

import (
	"github.com/lib/pq"
)

// CityGuide holds the practical-information block shown on the city guide
// page. One row per destination; seeded reference data like the hotel catalog.
type CityGuide struct {
	ID                  string         `json:"id" gorm:"type:uuid;primaryKey"`
	Destination         string         `json:"destination" gorm:"uniqueIndex"`
	VisaInfo            string         `json:"visaInfo"`
	PublicTransportTips string         `json:"publicTransportTips"`
	LocalCustoms        string         `json:"localCustoms"`
	LocalEvents         pq.StringArray `json:"localEvents" gorm:"type:text[]"`
	EcoSuggestions      string         `json:"ecoFriendlySuggestions"`
}

// PlaceDetails is the modal payload for a single place on the itinerary.
type PlaceDetails struct {
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	Description string  `json:"description"`
	EntryFee    float64 `json:"entryFee"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	BestVisit   string  `json:"bestVisit,omitempty"`
}
