package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"tourmuse/internal/models/db_models"
)

type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(apiKey string) Client {
	return &openAIClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (c *openAIClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) GenerateItinerary(ctx context.Context, draft db_models.TripDraft) (*db_models.Itinerary, error) {
	raw, err := c.complete(ctx, itineraryPrompt(draft))
	if err != nil {
		return nil, err
	}
	return parseItineraryJSON(raw)
}

func (c *openAIClient) Respond(ctx context.Context, message string, trip *db_models.Trip) (*ChatReply, error) {
	raw, err := c.complete(ctx, chatPrompt(message, trip))
	if err != nil {
		return nil, err
	}
	return parseChatJSON(raw)
}
