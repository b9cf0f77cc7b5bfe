package response_models

// BudgetSummary reports the current breakdown. Cap is the user's declared
// budget; the service reports the comparison but does not enforce it.
type BudgetSummary struct {
	Categories map[string]float64 `json:"categories"`
	Tier       string             `json:"tier"`
	Total      float64            `json:"total"`
	Cap        int64              `json:"cap"`
	WithinCap  bool               `json:"withinCap"`
}

type OptimizeBudgetResponse struct {
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
}
