package request_models

type SetTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

type OptimizeBudgetRequest struct {
	Category string `json:"category" binding:"required"`
}
