package planner_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/repositories"
	"tourmuse/internal/services"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(staging repositories.DraftStaging, itineraries services.ItineraryServiceInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(staging, itineraries)
}
