package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/request_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{tripService: tripService}
}

// Confirm persists the active plan as a trip record.
func (t *TripsController) Confirm(c *gin.Context) {
	session := middleware.GetSession(c)

	tripID, err := t.tripService.Confirm(c.Request.Context(), session.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"tripId": tripID}, "Trip confirmed")
}

// List returns the user's trips newest first; ?status= filters by lifecycle
// status.
func (t *TripsController) List(c *gin.Context) {
	session := middleware.GetSession(c)

	trips, err := t.tripService.List(c.Request.Context(), session.UserID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched")
}

func (t *TripsController) Recent(c *gin.Context) {
	session := middleware.GetSession(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	trips, err := t.tripService.Recent(c.Request.Context(), session.UserID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Recent trips fetched")
}

func (t *TripsController) Get(c *gin.Context) {
	session := middleware.GetSession(c)

	trip, err := t.tripService.Get(c.Request.Context(), session.UserID, c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched")
}

func (t *TripsController) Update(c *gin.Context) {
	session := middleware.GetSession(c)

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.tripService.Update(c.Request.Context(), session.UserID, c.Param("tripId"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip updated")
}

func (t *TripsController) SetStatus(c *gin.Context) {
	session := middleware.GetSession(c)

	var req request_models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	if err := t.tripService.SetStatus(c.Request.Context(), session.UserID, c.Param("tripId"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip status updated")
}

func (t *TripsController) Delete(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := t.tripService.Delete(c.Request.Context(), session.UserID, c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}
