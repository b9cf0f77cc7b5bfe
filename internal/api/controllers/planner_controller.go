package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/request_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// Submit handles the planning form. The route runs behind the optional
// session middleware: anonymous submissions are accepted and staged.
func (p *PlannerController) Submit(c *gin.Context) {
	var req request_models.SubmitPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session := middleware.GetSession(c)
	result, err := p.plannerService.Submit(c.Request.Context(), session.UserID, session.Authenticated, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip plan submitted")
}

// Resume consumes a draft staged before the auth detour.
func (p *PlannerController) Resume(c *gin.Context) {
	draftID := c.Param("draftId")
	if draftID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Draft ID is required")
		return
	}

	session := middleware.GetSession(c)
	itinerary, draft, err := p.plannerService.Resume(c.Request.Context(), session.UserID, draftID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"draft": draft, "itinerary": itinerary}, "Draft resumed")
}
