package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/httputil"
	"github.com/saptapadi/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterInquiryRoutes registers the routes for inquiries with
// the RouterGroup that is passed.
func RegisterInquiryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInquiryList)
		r.GET("", GetInquiries)
		r.POST("", CreateInquiries)
	}

	// Inquiry with ID
	{
		r.OPTIONS("/:id", OptionsInquiryDetail)
		r.GET("/:id", GetInquiry)
		r.PATCH("/:id", UpdateInquiry)
		r.DELETE("/:id", DeleteInquiry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inquiries
// @Success		204
// @Router			/v1/inquiries [options]
func OptionsInquiryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inquiries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inquiries/{id} [options]
func OptionsInquiryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Inquiry{})
}

// @Summary		Create inquiries
// @Description	Creates new inquiries. This endpoint backs the public contact forms.
// @Tags			Inquiries
// @Produce		json
// @Success		201			{object}	InquiryCreateResponse
// @Failure		400			{object}	InquiryCreateResponse
// @Failure		500			{object}	InquiryCreateResponse
// @Param			inquiries	body		[]InquiryEditable	true	"Inquiries"
// @Router			/v1/inquiries [post]
func CreateInquiries(c *gin.Context) {
	var editables []InquiryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InquiryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InquiryCreateResponse{}

	for _, editable := range editables {
		inquiry := editable.model()

		err = models.DB.Create(&inquiry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInquiry(c, inquiry)
		r.Data = append(r.Data, InquiryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get inquiries
// @Description	Returns a list of inquiries
// @Tags			Inquiries
// @Produce		json
// @Success		200	{object}	InquiryListResponse
// @Failure		400	{object}	InquiryListResponse
// @Failure		500	{object}	InquiryListResponse
// @Router			/v1/inquiries [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			email		query	string	false	"Filter by contact email"
// @Param			destination	query	string	false	"Filter by destination key"
// @Param			status		query	string	false	"Filter by workflow status"
// @Param			search		query	string	false	"Search for this text in name and message"
// @Param			offset		query	uint	false	"The offset of the first inquiry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of inquiries to return. Defaults to 50."
func GetInquiries(c *gin.Context) {
	var filter InquiryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("message LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 inquiries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var inquiries []models.Inquiry
	err = q.Find(&inquiries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InquiryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Inquiry, 0)
	for _, inquiry := range inquiries {
		data = append(data, newInquiry(c, inquiry))
	}

	c.JSON(http.StatusOK, InquiryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get inquiry
// @Description	Returns a specific inquiry
// @Tags			Inquiries
// @Produce		json
// @Success		200	{object}	InquiryResponse
// @Failure		400	{object}	InquiryResponse
// @Failure		404	{object}	InquiryResponse
// @Failure		500	{object}	InquiryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inquiries/{id} [get]
func GetInquiry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	var inquiry models.Inquiry
	err = models.DB.First(&inquiry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	data := newInquiry(c, inquiry)
	c.JSON(http.StatusOK, InquiryResponse{Data: &data})
}

// @Summary		Update inquiry
// @Description	Update an existing inquiry. Only values to be updated need to be specified.
// @Tags			Inquiries
// @Accept			json
// @Produce		json
// @Success		200		{object}	InquiryResponse
// @Failure		400		{object}	InquiryResponse
// @Failure		404		{object}	InquiryResponse
// @Failure		500		{object}	InquiryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			inquiry	body		InquiryEditable	true	"Inquiry"
// @Router			/v1/inquiries/{id} [patch]
func UpdateInquiry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	var inquiry models.Inquiry
	err = models.DB.First(&inquiry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InquiryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	var data InquiryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&inquiry).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InquiryResponse{
			Error: &s,
		})
		return
	}

	r := newInquiry(c, inquiry)
	c.JSON(http.StatusOK, InquiryResponse{Data: &r})
}

// @Summary		Delete inquiry
// @Description	Deletes an inquiry
// @Tags			Inquiries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inquiries/{id} [delete]
func DeleteInquiry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var inquiry models.Inquiry
	err = models.DB.First(&inquiry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&inquiry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
