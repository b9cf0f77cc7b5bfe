package services

import (
	"strings"

	"github.com/samber/lo"

	resp "tourmuse/internal/models/response_models"
)

// fallbackRule is one keyword category of the scripted assistant. Rules are
// tested in order and the first match wins; there is no scoring and no
// session memory.
type fallbackRule struct {
	keywords []string
	// alsoAny, when set, requires one of these on top of a keyword hit
	// ("plan" alone is too generic to claim the planning reply).
	alsoAny     []string
	message     string
	suggestions []string
	action      string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"restaurant", "food", "eat"},
		message: "I'd be happy to help you find great restaurants! Based on your location and preferences, " +
			"I can suggest local favorites, fine dining options, or budget-friendly eats. " +
			"What type of cuisine are you in the mood for?",
		suggestions: []string{
			"Find Italian restaurants nearby",
			"Show me budget-friendly options",
			"Recommend fine dining",
			"Local street food spots",
		},
	},
	{
		keywords: []string{"weather", "rain", "sunny"},
		message: "Weather can definitely affect your travel plans! I can suggest indoor activities for rainy days " +
			"or outdoor adventures for sunny weather. I can also help you pack appropriately based on the forecast.",
		suggestions: []string{
			"Indoor activities for rainy weather",
			"Best outdoor spots for sunny days",
			"What to pack for this weather",
			"Weather-appropriate clothing tips",
		},
	},
	{
		keywords: []string{"budget", "money", "cost"},
		message: "I can help you optimize your travel budget! I can suggest ways to save money on accommodation, " +
			"transportation, meals, and activities while still having an amazing trip.",
		suggestions: []string{
			"Ways to save on accommodation",
			"Budget-friendly transportation",
			"Free activities and attractions",
			"Money-saving meal tips",
		},
	},
	{
		keywords: []string{"change", "modify", "update"},
		message: "I can help you modify your trip! Whether you want to change dates, add new destinations, " +
			"adjust your budget, or swap activities, I'm here to help make your perfect itinerary.",
		suggestions: []string{
			"Change travel dates",
			"Add new destinations",
			"Modify daily activities",
			"Adjust budget allocation",
		},
		action: "modify_trip",
	},
	{
		keywords: []string{"plan"},
		alsoAny:  []string{"day", "trip"},
		message: "I'd love to help you plan your trip! Tell me your destination, travel dates, budget, " +
			"and what kind of experience you're looking for (adventure, relaxation, culture, etc.), " +
			"and I'll create a personalized itinerary for you.",
		suggestions: []string{
			"Plan a 3-day city break",
			"Create a week-long adventure",
			"Design a romantic getaway",
			"Plan a family vacation",
		},
	},
}

var fallbackDefault = resp.ChatResponse{
	Message: "I'm here to help with all your travel needs! I can assist with planning itineraries, " +
		"finding restaurants, suggesting activities, optimizing budgets, and answering any travel " +
		"questions you have. What would you like help with?",
	Suggestions: []string{
		"Plan a new trip",
		"Find restaurants nearby",
		"Suggest activities",
		"Help with my budget",
		"Modify my current trip",
	},
}

// fallbackRespond is the local scripted substitute used when the remote
// assistant is unavailable. Pure function of the message text.
func fallbackRespond(message string) *resp.ChatResponse {
	lower := strings.ToLower(message)
	contains := func(kw string) bool { return strings.Contains(lower, kw) }

	for _, rule := range fallbackRules {
		if !lo.SomeBy(rule.keywords, contains) {
			continue
		}
		if len(rule.alsoAny) > 0 && !lo.SomeBy(rule.alsoAny, contains) {
			continue
		}
		return &resp.ChatResponse{
			Message:     rule.message,
			Suggestions: rule.suggestions,
			Action:      rule.action,
		}
	}

	out := fallbackDefault
	return &out
}
