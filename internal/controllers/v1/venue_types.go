package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/models"
	"github.com/shopspring/decimal"
)

// VenueEditable represents all user configurable parameters
type VenueEditable struct {
	Name           string          `json:"name" example:"Lakeview Palace" default:""`                    // Name of the venue
	DestinationKey string          `json:"destination" example:"udaipur" default:""`                     // Destination key
	Capacity       int64           `json:"capacity" example:"400" default:"0"`                           // Maximum number of guests
	StartingPrice  decimal.Decimal `json:"startingPrice" example:"1500000" default:"0"`                  // Starting package price
	Description    string          `json:"description" example:"Heritage palace on the lake" default:""` // Description shown in the directory
	Featured       bool            `json:"featured" example:"true" default:"false"`                      // Shown on the marketing pages
	Archived       bool            `json:"archived" example:"true" default:"false"`                      // Hidden from the public directory
}

func (editable VenueEditable) model() models.Venue {
	return models.Venue{
		Name:           editable.Name,
		DestinationKey: editable.DestinationKey,
		Capacity:       editable.Capacity,
		StartingPrice:  editable.StartingPrice,
		Description:    editable.Description,
		Featured:       editable.Featured,
		Archived:       editable.Archived,
	}
}

type VenueLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/venues/5e414bb1-usid"` // The venue itself
}

type Venue struct {
	models.DefaultModel
	VenueEditable
	Links VenueLinks `json:"links"`
}

func newVenue(c *gin.Context, model models.Venue) Venue {
	url := c.GetString(string(models.DBContextURL))

	return Venue{
		DefaultModel: model.DefaultModel,
		VenueEditable: VenueEditable{
			Name:           model.Name,
			DestinationKey: model.DestinationKey,
			Capacity:       model.Capacity,
			StartingPrice:  model.StartingPrice,
			Description:    model.Description,
			Featured:       model.Featured,
			Archived:       model.Archived,
		},
		Links: VenueLinks{
			Self: fmt.Sprintf("%s/v1/venues/%s", url, model.ID),
		},
	}
}

type VenueListResponse struct {
	Data       []Venue     `json:"data"`                                                          // List of venues
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VenueCreateResponse struct {
	Data  []VenueResponse `json:"data"`                                                          // List of the created venues or their respective error
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (v *VenueCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	v.Data = append(v.Data, VenueResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VenueResponse struct {
	Data  *Venue  `json:"data"`                                                          // Data for the venue
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type VenueQueryFilter struct {
	Name           string `form:"name" filterField:"false"`   // By name
	Match          string `form:"match" filterField:"false"`  // By glob pattern on the name, e.g. "*palace*"
	DestinationKey string `form:"destination"`                // By destination key
	Capacity       int64  `form:"capacity" filterField:"false"` // Minimum capacity
	Featured       bool   `form:"featured"`                   // Is the venue featured?
	Archived       bool   `form:"archived"`                   // Is the venue archived?
	Search         string `form:"search" filterField:"false"` // By string in name or description
	Offset         uint   `form:"offset" filterField:"false"` // The offset of the first venue returned. Defaults to 0.
	Limit          int    `form:"limit" filterField:"false"`  // Maximum number of venues to return. Defaults to 50.
}

func (f VenueQueryFilter) model() (models.Venue, error) {
	return models.Venue{
		DestinationKey: f.DestinationKey,
		Featured:       f.Featured,
		Archived:       f.Archived,
	}, nil
}
