package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/currency"
	"github.com/saptapadi/backend/internal/httputil"
	"github.com/saptapadi/backend/internal/planner"
	"github.com/shopspring/decimal"
)

// RegisterPlanRoutes registers the routes for the budget calculator with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPlan)
	r.POST("", CreatePlan)

	r.OPTIONS("/options", OptionsPlanOptions)
	r.GET("/options", GetPlanOptions)
}

// PlanAllocation is a single category allocation with its display string.
type PlanAllocation struct {
	planner.Allocation
	FormattedAmount string `json:"formattedAmount" example:"₹5.95 L"` // Amount formatted for display
}

type Plan struct {
	AdjustedBudget          decimal.Decimal  `json:"adjustedBudget" example:"1700680"`      // Realistically allocatable budget
	FormattedAdjustedBudget string           `json:"formattedAdjustedBudget" example:"₹17.01 L"`
	PerGuestCost            decimal.Decimal  `json:"perGuestCost" example:"8503"`           // Adjusted budget divided by guest count
	FormattedPerGuestCost   string           `json:"formattedPerGuestCost" example:"₹8.5K"`
	Breakdown               []PlanAllocation `json:"breakdown"`                             // Per-category allocation, in display order
}

func newPlan(result planner.Result) Plan {
	plan := Plan{
		AdjustedBudget:          result.AdjustedBudget,
		FormattedAdjustedBudget: currency.Format(result.AdjustedBudget),
		PerGuestCost:            result.PerGuestCost,
		FormattedPerGuestCost:   currency.Format(result.PerGuestCost),
		Breakdown:               make([]PlanAllocation, 0, len(result.Breakdown)),
	}

	for _, allocation := range result.Breakdown {
		plan.Breakdown = append(plan.Breakdown, PlanAllocation{
			Allocation:      allocation,
			FormattedAmount: currency.Format(allocation.Amount),
		})
	}

	return plan
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                 // The computed spending plan
	Error *string `json:"error" example:"the budget must be larger than zero"` // The error, if any occurred
}

// PlanOptions is the reference data the calculator frontend renders.
type PlanOptions struct {
	Destinations []planner.Option   `json:"destinations"` // Destination options in display order
	Styles       []planner.Option   `json:"styles"`       // Style options in display order
	Presets      []planner.Preset   `json:"presets"`      // Budget bands in display order
	Events       []string           `json:"events"`       // Selectable events
	Categories   []planner.Category `json:"categories"`   // Spending categories in display order
}

type PlanOptionsResponse struct {
	Data *PlanOptions `json:"data"` // The calculator reference data
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/options [options]
func OptionsPlanOptions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Compute spending plan
// @Description	Computes the adjusted budget and its allocation over the spending categories
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Param			input	body		planner.Input	true	"Calculator input"
// @Router			/v1/plan [post]
func CreatePlan(c *gin.Context) {
	var input planner.Input
	err := httputil.BindData(c, &input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	result, err := planner.Plan(input)
	if err != nil {
		s := err.Error()
		c.JSON(planStatus(err), PlanResponse{
			Error: &s,
		})
		return
	}

	data := newPlan(result)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Get calculator options
// @Description	Returns the reference data for the calculator: destinations, styles, budget presets, events and spending categories
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	PlanOptionsResponse
// @Router			/v1/plan/options [get]
func GetPlanOptions(c *gin.Context) {
	data := PlanOptions{
		Destinations: planner.Destinations(),
		Styles:       planner.Styles(),
		Presets:      planner.Presets(),
		Events:       planner.Events(),
		Categories:   planner.Categories(),
	}

	c.JSON(http.StatusOK, PlanOptionsResponse{Data: &data})
}
