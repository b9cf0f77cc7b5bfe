package db_models

import (
	"github.com/lib/pq"
)

// Hotel is read-only catalog data served to the hotel browser.
type Hotel struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string         `json:"name" gorm:"index"`
	Location      string         `json:"location" gorm:"index"`
	Tier          HotelTier      `json:"tier" gorm:"type:varchar(16);index"`
	PricePerNight float64        `json:"pricePerNight"`
	Rating        float64        `json:"rating"`
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"`
	EcoCertified  bool           `json:"ecoCertified"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	SpecialOffer  string         `json:"specialOffer,omitempty"`
}
