package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tourmuse/internal/models/db_models"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(apiKey, model string) (Client, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) complete(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// JSON-only responses so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *geminiClient) GenerateItinerary(ctx context.Context, draft db_models.TripDraft) (*db_models.Itinerary, error) {
	raw, err := c.complete(ctx, itineraryPrompt(draft))
	if err != nil {
		return nil, err
	}
	return parseItineraryJSON(raw)
}

func (c *geminiClient) Respond(ctx context.Context, message string, trip *db_models.Trip) (*ChatReply, error) {
	raw, err := c.complete(ctx, chatPrompt(message, trip))
	if err != nil {
		return nil, err
	}
	return parseChatJSON(raw)
}
