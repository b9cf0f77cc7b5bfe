package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/request_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

func (b *BudgetController) Summary(c *gin.Context) {
	session := middleware.GetSession(c)

	summary, err := b.budgetService.Summary(session.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Budget summary fetched")
}

// SetTier rescales the accommodation category for the chosen hotel class.
func (b *BudgetController) SetTier(c *gin.Context) {
	session := middleware.GetSession(c)

	var req request_models.SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Tier is required")
		return
	}

	summary, err := b.budgetService.SetTier(session.UserID, req.Tier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Hotel tier updated")
}

func (b *BudgetController) Optimize(c *gin.Context) {
	var req request_models.OptimizeBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	result, err := b.budgetService.Optimize(req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Optimization suggestions fetched")
}
