package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/httputil"
	"github.com/saptapadi/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterWeddingRoutes registers the routes for weddings with
// the RouterGroup that is passed.
func RegisterWeddingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWeddingList)
		r.GET("", GetWeddings)
		r.POST("", CreateWeddings)
	}

	// Wedding with ID
	{
		r.OPTIONS("/:id", OptionsWeddingDetail)
		r.GET("/:id", GetWedding)
		r.PATCH("/:id", UpdateWedding)
		r.DELETE("/:id", DeleteWedding)
	}

	// Reconciliation
	{
		r.OPTIONS("/:id/summary", OptionsWeddingSummary)
		r.GET("/:id/summary", GetWeddingSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weddings
// @Success		204
// @Router			/v1/weddings [options]
func OptionsWeddingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weddings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [options]
func OptionsWeddingDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Wedding{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weddings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/summary [options]
func OptionsWeddingSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Wedding{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create wedding
// @Description	Creates a new wedding
// @Tags			Weddings
// @Produce		json
// @Success		201			{object}	WeddingCreateResponse
// @Failure		400			{object}	WeddingCreateResponse
// @Failure		500			{object}	WeddingCreateResponse
// @Param			weddings	body		[]WeddingEditable	true	"Weddings"
// @Router			/v1/weddings [post]
func CreateWeddings(c *gin.Context) {
	var editables []WeddingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WeddingCreateResponse{}

	for _, editable := range editables {
		wedding := editable.model()

		err = models.DB.Create(&wedding).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newWedding(c, wedding)
		r.Data = append(r.Data, WeddingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get weddings
// @Description	Returns a list of weddings
// @Tags			Weddings
// @Produce		json
// @Success		200	{object}	WeddingListResponse
// @Failure		400	{object}	WeddingListResponse
// @Failure		500	{object}	WeddingListResponse
// @Router			/v1/weddings [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			destination	query	string	false	"Filter by destination key"
// @Param			style		query	string	false	"Filter by style key"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Wedding returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Weddings to return. Defaults to 50."
func GetWeddings(c *gin.Context) {
	var filter WeddingQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Weddings and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var weddings []models.Wedding
	err = q.Find(&weddings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Wedding, 0)
	for _, wedding := range weddings {
		data = append(data, newWedding(c, wedding))
	}

	c.JSON(http.StatusOK, WeddingListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get wedding
// @Description	Returns a specific wedding
// @Tags			Weddings
// @Produce		json
// @Success		200	{object}	WeddingResponse
// @Failure		400	{object}	WeddingResponse
// @Failure		404	{object}	WeddingResponse
// @Failure		500	{object}	WeddingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [get]
func GetWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	data := newWedding(c, wedding)
	c.JSON(http.StatusOK, WeddingResponse{Data: &data})
}

// @Summary		Get wedding summary
// @Description	Returns the reconciliation of all budget items against the wedding's total budget
// @Tags			Weddings
// @Produce		json
// @Success		200	{object}	WeddingSummaryResponse
// @Failure		400	{object}	WeddingSummaryResponse
// @Failure		404	{object}	WeddingSummaryResponse
// @Failure		500	{object}	WeddingSummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/summary [get]
func GetWeddingSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingSummaryResponse{
			Error: &s,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := wedding.Summary(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingSummaryResponse{
			Error: &s,
		})
		return
	}

	data := newWeddingSummary(summary)
	c.JSON(http.StatusOK, WeddingSummaryResponse{Data: &data})
}

// @Summary		Update wedding
// @Description	Update an existing wedding. Only values to be updated need to be specified.
// @Tags			Weddings
// @Accept			json
// @Produce		json
// @Success		200		{object}	WeddingResponse
// @Failure		400		{object}	WeddingResponse
// @Failure		404		{object}	WeddingResponse
// @Failure		500		{object}	WeddingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			wedding	body		WeddingEditable	true	"Wedding"
// @Router			/v1/weddings/{id} [patch]
func UpdateWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WeddingEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	var data WeddingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&wedding).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &s,
		})
		return
	}

	r := newWedding(c, wedding)
	c.JSON(http.StatusOK, WeddingResponse{Data: &r})
}

// @Summary		Delete wedding
// @Description	Deletes a wedding and all its budget items
// @Tags			Weddings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [delete]
func DeleteWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&wedding).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
