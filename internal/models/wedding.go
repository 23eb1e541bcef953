package models

import (
	"strings"
	"time"

	"github.com/saptapadi/backend/internal/planner"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Wedding is the aggregate root all planning resources belong to.
type Wedding struct {
	DefaultModel
	Name           string          // Display name, e.g. "Ananya & Rohan"
	Note           string
	Date           time.Time       // The day of the main ceremony
	DestinationKey string          // Destination key from the planner tables
	StyleKey       string          // Style key from the planner tables
	GuestCount     int64           // Expected number of guests
	TotalBudget    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Nominal total budget, editable independently of items
	CurrencyLocale string          // BCP 47 tag for display formatting, defaults to en-IN
}

func (w *Wedding) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)

	if w.CurrencyLocale == "" {
		w.CurrencyLocale = "en-IN"
	}

	if !w.Date.IsZero() {
		w.Date = w.Date.In(time.UTC)
	}

	return nil
}

func (w *Wedding) AfterSave(_ *gorm.DB) error {
	if w.Name == "" {
		return ErrWeddingNameRequired
	}

	if w.TotalBudget.IsNegative() {
		return ErrTotalBudgetNegative
	}

	if _, err := language.Parse(w.CurrencyLocale); err != nil {
		return ErrCurrencyLocaleInvalid
	}

	return nil
}

// BeforeDelete removes all budget items belonging to the wedding.
func (w *Wedding) BeforeDelete(tx *gorm.DB) error {
	return tx.Where(&BudgetItem{WeddingID: w.ID}).Delete(&BudgetItem{}).Error
}

// Items returns all budget items for the wedding, newest first.
func (w Wedding) Items(db *gorm.DB) ([]BudgetItem, error) {
	var items []BudgetItem

	err := db.
		Where(&BudgetItem{WeddingID: w.ID}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// CategorySummary aggregates the budget items of one spending category.
type CategorySummary struct {
	CategoryID    string          `json:"categoryId" example:"venue-catering"`
	Name          string          `json:"name" example:"Venue & Catering"`
	Items         int             `json:"items" example:"3"`                     // Number of items in the category
	Total         decimal.Decimal `json:"total" example:"450000"`                // Sum of the items, preferring actual over estimated cost
	ShareOfBudget decimal.Decimal `json:"shareOfBudget" example:"12.00"`         // Total as percent of the wedding budget, 0 when no budget is set
}

// Summary reconciles all budget items against the wedding's total budget.
//
// It is a pure function of the current item set and is recomputed fresh on
// every call, there is no caching or incremental update.
type Summary struct {
	TotalBudget        decimal.Decimal   `json:"totalBudget" example:"3750000"`        // The wedding's nominal budget
	TotalEstimated     decimal.Decimal   `json:"totalEstimated" example:"2500000"`     // Sum of all estimated costs
	TotalActual        decimal.Decimal   `json:"totalActual" example:"1800000"`        // Sum of all incurred costs
	TotalPaid          decimal.Decimal   `json:"totalPaid" example:"1200000"`          // Sum of all payments
	Remaining          decimal.Decimal   `json:"remaining" example:"1950000"`          // Budget minus incurred costs, negative when over budget
	Outstanding        decimal.Decimal   `json:"outstanding" example:"600000"`         // Incurred but not yet paid
	UtilizationPercent decimal.Decimal   `json:"utilizationPercent" example:"48.00"`   // Incurred costs as percent of the budget
	Categories         []CategorySummary `json:"categories"`                           // Per-category aggregation, in display order
}

// Summary computes the budget reconciliation for the wedding.
func (w Wedding) Summary(db *gorm.DB) (Summary, error) {
	items, err := w.Items(db)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalBudget:    w.TotalBudget,
		TotalEstimated: decimal.Zero,
		TotalActual:    decimal.Zero,
		TotalPaid:      decimal.Zero,
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, item := range items {
		summary.TotalEstimated = summary.TotalEstimated.Add(item.EstimatedCost)
		summary.TotalPaid = summary.TotalPaid.Add(item.AmountPaid)

		if item.ActualCost.Valid {
			summary.TotalActual = summary.TotalActual.Add(item.ActualCost.Decimal)
		}

		totals[item.CategoryID] = totals[item.CategoryID].Add(item.EffectiveCost())
		counts[item.CategoryID]++
	}

	summary.Remaining = w.TotalBudget.Sub(summary.TotalActual)
	summary.Outstanding = summary.TotalActual.Sub(summary.TotalPaid)

	if w.TotalBudget.IsPositive() {
		summary.UtilizationPercent = summary.TotalActual.
			Div(w.TotalBudget).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	} else {
		summary.UtilizationPercent = decimal.Zero
	}

	// Grouping against the category table is for display only: items with
	// an unknown or empty category still count towards the totals above.
	summary.Categories = make([]CategorySummary, 0, len(planner.Categories()))
	for _, category := range planner.Categories() {
		categorySummary := CategorySummary{
			CategoryID: category.ID,
			Name:       category.Name,
			Items:      counts[category.ID],
			Total:      totals[category.ID],
		}

		if w.TotalBudget.IsPositive() {
			categorySummary.ShareOfBudget = categorySummary.Total.
				Div(w.TotalBudget).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}

		summary.Categories = append(summary.Categories, categorySummary)
	}

	return summary, nil
}
