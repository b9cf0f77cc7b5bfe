package services

import (
	"context"
	"fmt"
	"time"

	dbm "tourmuse/internal/models/db_models"
	"tourmuse/pkg/utils"
)

// ItineraryGenerator produces a day-by-day plan for a draft. The local
// generator is the stand-in for a real planning engine and always succeeds;
// an AI-backed generator may be layered in front of it.
type ItineraryGenerator interface {
	Generate(ctx context.Context, draft dbm.TripDraft) (*dbm.Itinerary, error)
}

type localGenerator struct{}

func NewLocalGenerator() ItineraryGenerator {
	return &localGenerator{}
}

type activityTemplate struct {
	name      string
	time      string
	duration  string
	cost      float64
	transport string
	entryFee  float64
}

// One rotation of slots per travel style. Costs are per-person baselines and
// get scaled by the trip budget.
var styleTemplates = map[dbm.TravelStyle][]activityTemplate{
	dbm.StyleRelaxation: {
		{"Morning spa session", "09:30", "2h", 40, "walk", 0},
		{"Botanical garden stroll", "13:00", "1h30m", 0, "metro", 8},
		{"Sunset beach lounge", "17:30", "2h", 15, "taxi", 0},
	},
	dbm.StyleCultural: {
		{"National museum visit", "09:00", "2h30m", 0, "metro", 12},
		{"Old town walking tour", "13:30", "2h", 20, "walk", 0},
		{"Evening theater show", "19:00", "2h", 35, "taxi", 0},
	},
	dbm.StyleAdventure: {
		{"Guided hiking trail", "08:00", "4h", 30, "bus", 5},
		{"Kayaking session", "14:00", "2h", 45, "shuttle", 0},
		{"Night market walk", "19:30", "1h30m", 10, "walk", 0},
	},
	dbm.StyleFoodie: {
		{"Local market tasting", "09:30", "2h", 25, "walk", 0},
		{"Cooking class", "13:00", "3h", 60, "metro", 0},
		{"Street food crawl", "18:30", "2h", 20, "walk", 0},
	},
	dbm.StyleShopping: {
		{"Artisan market browse", "10:00", "2h", 30, "metro", 0},
		{"Boutique district", "13:30", "2h30m", 50, "walk", 0},
		{"Evening mall visit", "18:00", "2h", 40, "taxi", 0},
	},
	dbm.StyleTourist: {
		{"Landmark viewpoint", "09:00", "2h", 10, "metro", 15},
		{"City highlights bus tour", "13:00", "3h", 35, "bus", 0},
		{"Riverside evening walk", "18:30", "1h30m", 0, "walk", 0},
	},
}

var weatherLabels = []string{"Sunny, 24C", "Partly cloudy, 21C", "Clear, 26C", "Light breeze, 23C"}

// Generate lays the style's template over every day of the date range.
// Output invariants match the store contract: days chronological, activities
// ordered by time.
func (g *localGenerator) Generate(_ context.Context, draft dbm.TripDraft) (*dbm.Itinerary, error) {
	templates, ok := styleTemplates[draft.TravelStyle]
	if !ok {
		return nil, fmt.Errorf("no templates for style %q", draft.TravelStyle)
	}

	days := utils.DayCount(draft.StartDate, draft.EndDate)
	if days < 1 {
		return nil, fmt.Errorf("empty date range")
	}

	// Scale baseline costs so a bigger declared budget buys pricier slots.
	scale := 1.0
	if draft.Budget > 0 {
		scale = float64(draft.Budget) / float64(1000*days)
		if scale < 0.5 {
			scale = 0.5
		}
		if scale > 3 {
			scale = 3
		}
	}

	transportCost := func(mode string) float64 {
		switch mode {
		case "taxi":
			return 12 * scale
		case "shuttle", "bus":
			return 5 * scale
		case "metro":
			return 3 * scale
		default:
			return 0
		}
	}

	it := &dbm.Itinerary{LastUpdated: time.Now().UTC()}
	start := utils.TruncateToDay(draft.StartDate)
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		day := dbm.ItineraryDay{Date: date}
		for i, tpl := range templates {
			mode := tpl.transport
			if draft.EcoFriendly && mode == "taxi" {
				mode = "bus"
			}
			day.Activities = append(day.Activities, dbm.Activity{
				Name:          tpl.name,
				Time:          tpl.time,
				Duration:      tpl.duration,
				Location:      draft.Location,
				Cost:          tpl.cost * scale,
				TransportMode: mode,
				TransportCost: transportCost(mode),
				EntryFee:      tpl.entryFee,
				Weather:       weatherLabels[(d+i)%len(weatherLabels)],
			})
		}
		it.Days = append(it.Days, day)
	}

	it.Normalize()
	return it, nil
}
