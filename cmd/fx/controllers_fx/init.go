package controllers_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewPlannerController,
	controllers.NewItineraryController,
	controllers.NewTripsController,
	controllers.NewBudgetController,
	controllers.NewChatController,
	controllers.NewHotelsController,
	controllers.NewGuideController,
)
