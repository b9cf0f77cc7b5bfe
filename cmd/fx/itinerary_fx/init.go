package itinerary_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/services"
	"tourmuse/pkg/ai"
)

var Module = fx.Provide(
	services.NewLocalGenerator,
	provideItineraryService,
)

func provideItineraryService(generator services.ItineraryGenerator, remote ai.Client) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, remote)
}
