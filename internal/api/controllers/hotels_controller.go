package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/request_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/utils"
)

type HotelsController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelsController(hotelService services.HotelServiceInterface) *HotelsController {
	return &HotelsController{hotelService: hotelService}
}

// Search filters and sorts the hotel catalog from query parameters, e.g.
// /hotels?tier=luxury&minPrice=100&maxPrice=300&amenities=wifi&sortBy=price
func (h *HotelsController) Search(c *gin.Context) {
	var req request_models.HotelSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	hotels, err := h.hotelService.Search(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched")
}
