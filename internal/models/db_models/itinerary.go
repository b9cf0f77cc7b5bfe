package db_models

import (
	"sort"
	"time"
)

// Activity is one slot in a day's schedule. Times are "HH:MM" strings so the
// document round-trips unchanged through the store.
type Activity struct {
	Name          string     `json:"name" bson:"name"`
	Time          string     `json:"time" bson:"time"`
	Duration      string     `json:"duration,omitempty" bson:"duration,omitempty"`
	Location      string     `json:"location,omitempty" bson:"location,omitempty"`
	Cost          float64    `json:"cost" bson:"cost"`
	TransportMode string     `json:"transportMode,omitempty" bson:"transportMode,omitempty"`
	TransportCost float64    `json:"transportCost,omitempty" bson:"transportCost,omitempty"`
	EntryFee      float64    `json:"entryFee,omitempty" bson:"entryFee,omitempty"`
	Weather       string     `json:"weather,omitempty" bson:"weather,omitempty"`
	Events        []Activity `json:"events,omitempty" bson:"events,omitempty"`
}

type ItineraryDay struct {
	Date       time.Time  `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// Itinerary is the day-by-day plan for the active trip. It is replaced
// wholesale on replan, never merged.
type Itinerary struct {
	Days        []ItineraryDay `json:"days" bson:"days"`
	LastUpdated time.Time      `json:"lastUpdated" bson:"lastUpdated"`
}

// Normalize sorts days chronologically and each day's activities by time.
func (it *Itinerary) Normalize() {
	sort.SliceStable(it.Days, func(i, j int) bool {
		return it.Days[i].Date.Before(it.Days[j].Date)
	})
	for d := range it.Days {
		acts := it.Days[d].Activities
		sort.SliceStable(acts, func(i, j int) bool {
			return acts[i].Time < acts[j].Time
		})
	}
}

// TotalCost sums activity, transport and entry costs across all days.
func (it *Itinerary) TotalCost() float64 {
	var total float64
	for _, day := range it.Days {
		for _, act := range day.Activities {
			total += act.Cost + act.TransportCost + act.EntryFee
		}
	}
	return total
}
