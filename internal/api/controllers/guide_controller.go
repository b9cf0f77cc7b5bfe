package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/services"
	"tourmuse/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{guideService: guideService}
}

func (g *GuideController) Guide(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	guide, err := g.guideService.Guide(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "City guide fetched")
}

func (g *GuideController) PlaceDetails(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place is required")
		return
	}

	details, err := g.guideService.PlaceDetails(c.Request.Context(), place, c.Query("destination"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Place details fetched")
}
