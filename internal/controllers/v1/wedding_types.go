package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/currency"
	"github.com/saptapadi/backend/internal/models"
	"github.com/shopspring/decimal"
)

// WeddingEditable represents all user configurable parameters
type WeddingEditable struct {
	Name           string          `json:"name" example:"Ananya & Rohan" default:""`            // Name of the wedding
	Note           string          `json:"note" example:"Three day celebration" default:""`     // Notes about the wedding
	Date           time.Time       `json:"date" example:"2027-02-14T00:00:00Z"`                 // Day of the main ceremony
	DestinationKey string          `json:"destination" example:"udaipur" default:""`            // Destination key
	StyleKey       string          `json:"style" example:"luxurious" default:""`                // Wedding style key
	GuestCount     int64           `json:"guestCount" example:"200" default:"0"`                // Expected number of guests
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"3750000" default:"0"`           // Nominal total budget
	CurrencyLocale string          `json:"currencyLocale" example:"en-IN" default:""`           // Locale used for formatting
}

func (editable WeddingEditable) model() models.Wedding {
	return models.Wedding{
		Name:           editable.Name,
		Note:           editable.Note,
		Date:           editable.Date,
		DestinationKey: editable.DestinationKey,
		StyleKey:       editable.StyleKey,
		GuestCount:     editable.GuestCount,
		TotalBudget:    editable.TotalBudget,
		CurrencyLocale: editable.CurrencyLocale,
	}
}

type WeddingLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/weddings/da6fb6c4-usid"`                 // The wedding itself
	Items   string `json:"items" example:"https://example.com/api/v1/budget-items?wedding=da6fb6c4-usid"`    // Budget items for this wedding
	Summary string `json:"summary" example:"https://example.com/api/v1/weddings/da6fb6c4-usid/summary"`      // Budget reconciliation for this wedding
}

type Wedding struct {
	models.DefaultModel
	WeddingEditable
	Links WeddingLinks `json:"links"`
}

func newWedding(c *gin.Context, model models.Wedding) Wedding {
	url := c.GetString(string(models.DBContextURL))

	return Wedding{
		DefaultModel: model.DefaultModel,
		WeddingEditable: WeddingEditable{
			Name:           model.Name,
			Note:           model.Note,
			Date:           model.Date,
			DestinationKey: model.DestinationKey,
			StyleKey:       model.StyleKey,
			GuestCount:     model.GuestCount,
			TotalBudget:    model.TotalBudget,
			CurrencyLocale: model.CurrencyLocale,
		},
		Links: WeddingLinks{
			Self:    fmt.Sprintf("%s/v1/weddings/%s", url, model.ID),
			Items:   fmt.Sprintf("%s/v1/budget-items?wedding=%s", url, model.ID),
			Summary: fmt.Sprintf("%s/v1/weddings/%s/summary", url, model.ID),
		},
	}
}

type WeddingListResponse struct {
	Data       []Wedding   `json:"data"`                                                          // List of weddings
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type WeddingCreateResponse struct {
	Data  []WeddingResponse `json:"data"`                                                          // List of the created weddings or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (w *WeddingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	w.Data = append(w.Data, WeddingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WeddingResponse struct {
	Data  *Wedding `json:"data"`                                                          // Data for the wedding
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// WeddingSummary is the reconciliation of all budget items against the
// wedding's total budget, with display-formatted totals attached.
type WeddingSummary struct {
	models.Summary
	Formatted WeddingSummaryFormatted `json:"formatted"`
}

type WeddingSummaryFormatted struct {
	TotalBudget string `json:"totalBudget" example:"₹37.50 L"`
	TotalActual string `json:"totalActual" example:"₹18.00 L"`
	TotalPaid   string `json:"totalPaid" example:"₹12.00 L"`
	Remaining   string `json:"remaining" example:"₹19.50 L"`
	Outstanding string `json:"outstanding" example:"₹6.00 L"`
}

func newWeddingSummary(summary models.Summary) WeddingSummary {
	return WeddingSummary{
		Summary: summary,
		Formatted: WeddingSummaryFormatted{
			TotalBudget: currency.Format(summary.TotalBudget),
			TotalActual: currency.Format(summary.TotalActual),
			TotalPaid:   currency.Format(summary.TotalPaid),
			Remaining:   currency.Format(summary.Remaining),
			Outstanding: currency.Format(summary.Outstanding),
		},
	}
}

type WeddingSummaryResponse struct {
	Data  *WeddingSummary `json:"data"`                                                          // The reconciliation data
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WeddingQueryFilter struct {
	Name           string       `form:"name" filterField:"false"`   // By name
	Note           string       `form:"note" filterField:"false"`   // By note
	DestinationKey string       `form:"destination"`                // By destination key
	StyleKey       string       `form:"style"`                      // By style key
	Search         string       `form:"search" filterField:"false"` // By string in name or note
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first wedding returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of weddings to return. Defaults to 50.
}

func (f WeddingQueryFilter) model() (models.Wedding, error) {
	return models.Wedding{
		DestinationKey: f.DestinationKey,
		StyleKey:       f.StyleKey,
	}, nil
}
