package planner

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotPositive     = errors.New("the budget must be larger than zero")
	ErrGuestCountNotPositive = errors.New("the guest count must be larger than zero")
)

// Input holds the parameters the couple selects in the calculator.
type Input struct {
	Budget         decimal.Decimal `json:"budget" binding:"required" example:"3750000"` // Nominal total budget in whole rupees
	DestinationKey string          `json:"destination" example:"udaipur"`               // Destination key, unknown keys are neutral
	StyleKey       string          `json:"style" example:"luxurious"`                   // Wedding style key, unknown keys are neutral
	GuestCount     int64           `json:"guestCount" binding:"required" example:"200"` // Expected number of guests
	Events         []string        `json:"events" example:"mehendi,sangeet"`            // Events the couple is planning
}

// Allocation is the share of the adjusted budget for a single category.
type Allocation struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount" example:"595238"` // Rounded to whole rupees
	Percent  int64           `json:"percentage" example:"35"` // Share of the adjusted budget
}

// Result is a complete spending plan.
type Result struct {
	AdjustedBudget decimal.Decimal `json:"adjustedBudget" example:"1700680"` // Realistically allocatable budget
	PerGuestCost   decimal.Decimal `json:"perGuestCost" example:"8503"`      // Adjusted budget divided by guest count
	Breakdown      []Allocation    `json:"breakdown"`                        // Per-category allocation, in display order
}

// EventMultiplier returns the cost factor for the number of events planned:
// a base of 0.85 plus 0.05 per event. With no events selected this
// deliberately stays at 0.85, the formula has no special case for it.
func EventMultiplier(count int) decimal.Decimal {
	return decimal.NewFromFloat(0.85).Add(
		decimal.NewFromInt(int64(count)).Mul(decimal.NewFromFloat(0.05)))
}

// GuestMultiplier returns the cost factor for the guest count tier.
// The boundaries are exclusive: 150 and 300 guests still belong to the
// lower tier.
func GuestMultiplier(guests int64) decimal.Decimal {
	switch {
	case guests > 300:
		return decimal.NewFromFloat(1.15)
	case guests > 150:
		return decimal.NewFromInt(1)
	default:
		return decimal.NewFromFloat(0.9)
	}
}

// Plan computes the spending plan for the input.
//
// The nominal budget is treated as a sticker price: expensive destinations,
// styles and larger events consume more of it, so the adjusted budget is the
// nominal budget divided by the product of all factors. It reports how far
// the money actually goes.
func Plan(input Input) (Result, error) {
	if !input.Budget.IsPositive() {
		return Result{}, ErrBudgetNotPositive
	}

	if input.GuestCount <= 0 {
		return Result{}, ErrGuestCountNotPositive
	}

	factor := DestinationMultiplier(input.DestinationKey).
		Mul(StyleMultiplier(input.StyleKey)).
		Mul(EventMultiplier(len(input.Events))).
		Mul(GuestMultiplier(input.GuestCount))

	adjusted := input.Budget.Div(factor)

	result := Result{
		AdjustedBudget: adjusted.Round(0),
		PerGuestCost:   adjusted.Div(decimal.NewFromInt(input.GuestCount)).Round(0),
		Breakdown:      make([]Allocation, 0, len(categories)),
	}

	for _, category := range Categories() {
		amount := adjusted.
			Mul(decimal.NewFromInt(category.Percentage)).
			Div(decimal.NewFromInt(100)).
			Round(0)

		result.Breakdown = append(result.Breakdown, Allocation{
			Category: category,
			Amount:   amount,
			Percent:  category.Percentage,
		})
	}

	return result, nil
}
