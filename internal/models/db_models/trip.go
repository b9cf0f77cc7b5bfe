package db_models

import (
	"time"
)

type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanned, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

type TravelStyle string

const (
	StyleRelaxation TravelStyle = "relaxation"
	StyleCultural   TravelStyle = "cultural"
	StyleAdventure  TravelStyle = "adventure"
	StyleFoodie     TravelStyle = "foodie"
	StyleShopping   TravelStyle = "shopping"
	StyleTourist    TravelStyle = "tourist"
)

func (s TravelStyle) Valid() bool {
	switch s {
	case StyleRelaxation, StyleCultural, StyleAdventure, StyleFoodie, StyleShopping, StyleTourist:
		return true
	}
	return false
}

// TripDraft is an unconfirmed trip request collected from the planning form.
// Once handed to the itinerary store it is only changed through explicit
// replan or chat-patch operations.
type TripDraft struct {
	ID                string      `json:"id" bson:"draftId"`
	Location          string      `json:"location" bson:"location"`
	StartDate         time.Time   `json:"startDate" bson:"startDate"`
	EndDate           time.Time   `json:"endDate" bson:"endDate"`
	Budget            int64       `json:"budget" bson:"budget"`
	TravelStyle       TravelStyle `json:"travelStyle" bson:"travelStyle"`
	EcoFriendly       bool        `json:"ecoFriendly" bson:"ecoFriendly"`
	DynamicReplanning bool        `json:"dynamicReplanning" bson:"dynamicReplanning"`
	CreatedAt         time.Time   `json:"createdAt" bson:"createdAt"`
}

// Trip is the persisted record in the "trips" collection. Identity is
// assigned by the persistence layer on insert.
type Trip struct {
	ID                string           `json:"id" bson:"_id,omitempty"`
	UserID            string           `json:"userId" bson:"userId"`
	Location          string           `json:"location" bson:"location"`
	StartDate         time.Time        `json:"startDate" bson:"startDate"`
	EndDate           time.Time        `json:"endDate" bson:"endDate"`
	Budget            int64            `json:"budget" bson:"budget"`
	TravelStyle       TravelStyle      `json:"travelStyle" bson:"travelStyle"`
	EcoFriendly       bool             `json:"ecoFriendly" bson:"ecoFriendly"`
	DynamicReplanning bool             `json:"dynamicReplanning" bson:"dynamicReplanning"`
	Status            TripStatus       `json:"status" bson:"status"`
	CreatedAt         time.Time        `json:"createdAt" bson:"createdAt"`
	LastUpdated       time.Time        `json:"lastUpdated" bson:"lastUpdated"`
	Itinerary         *Itinerary       `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Budgets           *BudgetBreakdown `json:"budgetBreakdown,omitempty" bson:"budgetBreakdown,omitempty"`
}
