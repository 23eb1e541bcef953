package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/saptapadi/backend/internal/httputil"
	"github.com/saptapadi/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterVenueRoutes registers the routes for venues with
// the RouterGroup that is passed.
func RegisterVenueRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsVenueList)
		r.GET("", GetVenues)
		r.POST("", CreateVenues)
	}

	// Venue with ID
	{
		r.OPTIONS("/:id", OptionsVenueDetail)
		r.GET("/:id", GetVenue)
		r.PATCH("/:id", UpdateVenue)
		r.DELETE("/:id", DeleteVenue)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Venues
// @Success		204
// @Router			/v1/venues [options]
func OptionsVenueList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Venues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/venues/{id} [options]
func OptionsVenueDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Venue{})
}

// @Summary		Create venues
// @Description	Creates new venues
// @Tags			Venues
// @Produce		json
// @Success		201		{object}	VenueCreateResponse
// @Failure		400		{object}	VenueCreateResponse
// @Failure		500		{object}	VenueCreateResponse
// @Param			venues	body		[]VenueEditable	true	"Venues"
// @Router			/v1/venues [post]
func CreateVenues(c *gin.Context) {
	var editables []VenueEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VenueCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := VenueCreateResponse{}

	for _, editable := range editables {
		venue := editable.model()

		err = models.DB.Create(&venue).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newVenue(c, venue)
		r.Data = append(r.Data, VenueResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get venues
// @Description	Returns a list of venues
// @Tags			Venues
// @Produce		json
// @Success		200	{object}	VenueListResponse
// @Failure		400	{object}	VenueListResponse
// @Failure		500	{object}	VenueListResponse
// @Router			/v1/venues [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			match		query	string	false	"Filter by glob pattern on the name"
// @Param			destination	query	string	false	"Filter by destination key"
// @Param			capacity	query	int		false	"Minimum capacity"
// @Param			featured	query	bool	false	"Is the venue featured?"
// @Param			archived	query	bool	false	"Is the venue archived?"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first venue returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of venues to return. Defaults to 50."
func GetVenues(c *gin.Context) {
	var filter VenueQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, VenueListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Capacity > 0 {
		q = q.Where("capacity >= ?", filter.Capacity)
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	var venues []models.Venue
	err = q.Find(&venues).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueListResponse{
			Error: &s,
		})
		return
	}

	// Glob matching cannot be expressed in SQL, so it is applied after the
	// database query and pagination happens in memory.
	if filter.Match != "" {
		pattern := strings.ToLower(filter.Match)
		matched := make([]models.Venue, 0, len(venues))
		for _, venue := range venues {
			if glob.Glob(pattern, strings.ToLower(venue.Name)) {
				matched = append(matched, venue)
			}
		}
		venues = matched
	}

	count := int64(len(venues))

	if int(filter.Offset) < len(venues) {
		venues = venues[filter.Offset:]
	} else {
		venues = []models.Venue{}
	}

	// Default to 50 venues and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(venues) {
		venues = venues[:limit]
	}

	data := make([]Venue, 0)
	for _, venue := range venues {
		data = append(data, newVenue(c, venue))
	}

	c.JSON(http.StatusOK, VenueListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get venue
// @Description	Returns a specific venue
// @Tags			Venues
// @Produce		json
// @Success		200	{object}	VenueResponse
// @Failure		400	{object}	VenueResponse
// @Failure		404	{object}	VenueResponse
// @Failure		500	{object}	VenueResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/venues/{id} [get]
func GetVenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	var venue models.Venue
	err = models.DB.First(&venue, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	data := newVenue(c, venue)
	c.JSON(http.StatusOK, VenueResponse{Data: &data})
}

// @Summary		Update venue
// @Description	Update an existing venue. Only values to be updated need to be specified.
// @Tags			Venues
// @Accept			json
// @Produce		json
// @Success		200		{object}	VenueResponse
// @Failure		400		{object}	VenueResponse
// @Failure		404		{object}	VenueResponse
// @Failure		500		{object}	VenueResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			venue	body		VenueEditable	true	"Venue"
// @Router			/v1/venues/{id} [patch]
func UpdateVenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	var venue models.Venue
	err = models.DB.First(&venue, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, VenueEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	var data VenueEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&venue).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VenueResponse{
			Error: &s,
		})
		return
	}

	r := newVenue(c, venue)
	c.JSON(http.StatusOK, VenueResponse{Data: &r})
}

// @Summary		Delete venue
// @Description	Deletes a venue
// @Tags			Venues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/venues/{id} [delete]
func DeleteVenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var venue models.Venue
	err = models.DB.First(&venue, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&venue).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
