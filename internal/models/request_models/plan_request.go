package request_models

import (
	"time"
)

// SubmitPlanRequest mirrors the planning form. Dates are RFC3339; budget is
// the whole-currency cap the user typed in.
type SubmitPlanRequest struct {
	Location          string     `json:"location"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Budget            int64      `json:"budget"`
	TravelStyle       string     `json:"travelStyle"`
	EcoFriendly       bool       `json:"ecoFriendly"`
	DynamicReplanning bool       `json:"dynamicReplanning"`
}
