package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/httputil"
	"github.com/saptapadi/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBudgetItemRoutes registers the routes for budget items with
// the RouterGroup that is passed.
func RegisterBudgetItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetItemList)
		r.GET("", GetBudgetItems)
		r.POST("", CreateBudgetItems)
	}

	// Budget item with ID
	{
		r.OPTIONS("/:id", OptionsBudgetItemDetail)
		r.GET("/:id", GetBudgetItem)
		r.PATCH("/:id", UpdateBudgetItem)
		r.DELETE("/:id", DeleteBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items [options]
func OptionsBudgetItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [options]
func OptionsBudgetItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetItem{})
}

// @Summary		Create budget items
// @Description	Creates new budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		201				{object}	BudgetItemCreateResponse
// @Failure		400				{object}	BudgetItemCreateResponse
// @Failure		404				{object}	BudgetItemCreateResponse
// @Failure		500				{object}	BudgetItemCreateResponse
// @Param			budgetItems	body		[]BudgetItemEditable	true	"Budget items"
// @Router			/v1/budget-items [post]
func CreateBudgetItems(c *gin.Context) {
	var editables []BudgetItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budget items
// @Description	Returns a list of budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemListResponse
// @Failure		400	{object}	BudgetItemListResponse
// @Failure		500	{object}	BudgetItemListResponse
// @Router			/v1/budget-items [get]
// @Param			wedding		query	string	false	"Filter by wedding ID"
// @Param			category	query	string	false	"Filter by spending category key"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			status		query	string	false	"Filter by derived payment status"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first budget item returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budget items to return. Defaults to 50."
func GetBudgetItems(c *gin.Context) {
	var filter BudgetItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// The payment status is derived from the amounts, not stored, so it is
	// validated here and applied after the database query.
	var paymentStatus models.PaymentStatus
	if filter.Status != "" {
		var err error
		paymentStatus, err = models.ParsePaymentStatus(filter.Status)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetItemListResponse{
				Error: &s,
			})
			return
		}
	}

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	var items []models.BudgetItem
	err = q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	if filter.Status != "" {
		filtered := make([]models.BudgetItem, 0, len(items))
		for _, item := range items {
			if item.PaymentStatus() == paymentStatus {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	// Pagination happens in memory since the status filter can only be
	// applied after reading the items.
	count := int64(len(items))

	if int(filter.Offset) < len(items) {
		items = items[filter.Offset:]
	} else {
		items = []models.BudgetItem{}
	}

	// Default to 50 budget items and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	data := make([]BudgetItem, 0)
	for _, item := range items {
		data = append(data, newBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget item
// @Description	Returns a specific budget item
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemResponse
// @Failure		400	{object}	BudgetItemResponse
// @Failure		404	{object}	BudgetItemResponse
// @Failure		500	{object}	BudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [get]
func GetBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &data})
}

// @Summary		Update budget item
// @Description	Update an existing budget item. Only values to be updated need to be specified.
// @Tags			BudgetItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetItemResponse
// @Failure		400			{object}	BudgetItemResponse
// @Failure		404			{object}	BudgetItemResponse
// @Failure		500			{object}	BudgetItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetItem	body		BudgetItemEditable	true	"Budget item"
// @Router			/v1/budget-items/{id} [patch]
func UpdateBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var data BudgetItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &r})
}

// @Summary		Delete budget item
// @Description	Deletes a budget item
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
