package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saptapadi/backend/internal/models"
	sp_uuid "github.com/saptapadi/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItemEditable represents all user configurable parameters
type BudgetItemEditable struct {
	WeddingID     uuid.UUID           `json:"weddingId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // ID of the wedding the item belongs to
	Name          string              `json:"name" example:"Photographer booking" default:""`                // Name of the budget item
	CategoryID    string              `json:"categoryId" example:"photography" default:""`                   // Spending category key
	EstimatedCost decimal.Decimal     `json:"estimatedCost" example:"250000" default:"0"`                    // Planned cost
	ActualCost    decimal.NullDecimal `json:"actualCost" swaggertype:"number" example:"240000"`              // Incurred cost, null until known
	AmountPaid    decimal.Decimal     `json:"amountPaid" example:"100000" default:"0"`                       // Amount paid so far
	Note          string              `json:"note" example:"Includes pre-wedding shoot" default:""`          // Notes about the item
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		WeddingID:     editable.WeddingID,
		Name:          editable.Name,
		CategoryID:    editable.CategoryID,
		EstimatedCost: editable.EstimatedCost,
		ActualCost:    editable.ActualCost,
		AmountPaid:    editable.AmountPaid,
		Note:          editable.Note,
	}
}

type BudgetItemLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/budget-items/d1398d35-usid"`   // The budget item itself
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/da6fb6c4-usid"`    // The wedding the item belongs to
}

type BudgetItem struct {
	models.DefaultModel
	BudgetItemEditable
	Links BudgetItemLinks `json:"links"`

	// These fields are computed on every read
	EffectiveCost decimal.Decimal      `json:"effectiveCost" example:"240000"` // Actual cost once known, the estimate before that
	PaymentStatus models.PaymentStatus `json:"paymentStatus" example:"partial"`
}

func newBudgetItem(c *gin.Context, model models.BudgetItem) BudgetItem {
	url := c.GetString(string(models.DBContextURL))

	return BudgetItem{
		DefaultModel: model.DefaultModel,
		BudgetItemEditable: BudgetItemEditable{
			WeddingID:     model.WeddingID,
			Name:          model.Name,
			CategoryID:    model.CategoryID,
			EstimatedCost: model.EstimatedCost,
			ActualCost:    model.ActualCost,
			AmountPaid:    model.AmountPaid,
			Note:          model.Note,
		},
		Links: BudgetItemLinks{
			Self:    fmt.Sprintf("%s/v1/budget-items/%s", url, model.ID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, model.WeddingID),
		},
		EffectiveCost: model.EffectiveCost(),
		PaymentStatus: model.PaymentStatus(),
	}
}

type BudgetItemListResponse struct {
	Data       []BudgetItem `json:"data"`                                                          // List of budget items
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetItemCreateResponse struct {
	Data  []BudgetItemResponse `json:"data"`                                                          // List of the created budget items or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetItemResponse struct {
	Data  *BudgetItem `json:"data"`                                                          // Data for the budget item
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetItemQueryFilter struct {
	WeddingID  sp_uuid.UUID `form:"wedding"`                    // By ID of the wedding
	CategoryID string       `form:"category"`                   // By spending category key
	Name       string       `form:"name" filterField:"false"`   // By name
	Note       string       `form:"note" filterField:"false"`   // By note
	Status     string       `form:"status" filterField:"false"` // By derived payment status
	Search     string       `form:"search" filterField:"false"` // By string in name or note
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first budget item returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of budget items to return. Defaults to 50.
}

func (f BudgetItemQueryFilter) model() (models.BudgetItem, error) {
	return models.BudgetItem{
		WeddingID:  f.WeddingID.UUID,
		CategoryID: f.CategoryID,
	}, nil
}
