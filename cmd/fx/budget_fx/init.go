package budget_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/services"
)

var Module = fx.Provide(provideBudgetService)

func provideBudgetService(itineraries services.ItineraryServiceInterface) services.BudgetServiceInterface {
	return services.NewBudgetService(itineraries)
}
