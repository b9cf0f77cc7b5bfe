package chat_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/services"
	"tourmuse/pkg/ai"
)

var Module = fx.Provide(provideChatService)

func provideChatService(remote ai.Client, itineraries services.ItineraryServiceInterface) services.ChatServiceInterface {
	return services.NewChatService(remote, itineraries)
}
