package controllers

import (
	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/response_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) Get(c *gin.Context) {
	session := middleware.GetSession(c)

	itinerary, busy, err := i.itineraryService.Get(session.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Itinerary: itinerary,
		Busy:      busy,
	}, "Itinerary fetched")
}

// Replan regenerates the whole itinerary. Overlapping requests for the same
// user collapse into a single generation.
func (i *ItineraryController) Replan(c *gin.Context) {
	session := middleware.GetSession(c)

	itinerary, err := i.itineraryService.Replan(c.Request.Context(), session.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Itinerary: itinerary,
	}, "Itinerary replanned")
}
