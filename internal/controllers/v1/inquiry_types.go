package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saptapadi/backend/internal/models"
)

// InquiryEditable represents all user configurable parameters
type InquiryEditable struct {
	Name           string               `json:"name" example:"Priya Sharma" default:""`                 // Name of the person inquiring
	Email          string               `json:"email" example:"priya@example.com" default:""`           // Contact email
	Phone          string               `json:"phone" example:"+91 98765 43210" default:""`             // Contact phone number
	Message        string               `json:"message" example:"Looking at a winter wedding" default:""` // Free-form message
	DestinationKey string               `json:"destination" example:"udaipur" default:""`               // Destination the lead is interested in
	EventDate      time.Time            `json:"eventDate" example:"2027-02-14T00:00:00Z"`               // Tentative wedding date
	Status         models.InquiryStatus `json:"status" example:"contacted" default:"new"`               // Workflow status
}

func (editable InquiryEditable) model() models.Inquiry {
	return models.Inquiry{
		Name:           editable.Name,
		Email:          editable.Email,
		Phone:          editable.Phone,
		Message:        editable.Message,
		DestinationKey: editable.DestinationKey,
		EventDate:      editable.EventDate,
		Status:         editable.Status,
	}
}

type InquiryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/inquiries/a3f8d2e1-usid"` // The inquiry itself
}

type Inquiry struct {
	models.DefaultModel
	InquiryEditable
	Links InquiryLinks `json:"links"`
}

func newInquiry(c *gin.Context, model models.Inquiry) Inquiry {
	url := c.GetString(string(models.DBContextURL))

	return Inquiry{
		DefaultModel: model.DefaultModel,
		InquiryEditable: InquiryEditable{
			Name:           model.Name,
			Email:          model.Email,
			Phone:          model.Phone,
			Message:        model.Message,
			DestinationKey: model.DestinationKey,
			EventDate:      model.EventDate,
			Status:         model.Status,
		},
		Links: InquiryLinks{
			Self: fmt.Sprintf("%s/v1/inquiries/%s", url, model.ID),
		},
	}
}

type InquiryListResponse struct {
	Data       []Inquiry   `json:"data"`                                                          // List of inquiries
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InquiryCreateResponse struct {
	Data  []InquiryResponse `json:"data"`                                                          // List of the created inquiries or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *InquiryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InquiryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InquiryResponse struct {
	Data  *Inquiry `json:"data"`                                                          // Data for the inquiry
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InquiryQueryFilter struct {
	Name           string `form:"name" filterField:"false"`   // By name
	Email          string `form:"email"`                      // By contact email
	DestinationKey string `form:"destination"`                // By destination key
	Status         string `form:"status"`                     // By workflow status
	Search         string `form:"search" filterField:"false"` // By string in name or message
	Offset         uint   `form:"offset" filterField:"false"` // The offset of the first inquiry returned. Defaults to 0.
	Limit          int    `form:"limit" filterField:"false"`  // Maximum number of inquiries to return. Defaults to 50.
}

func (f InquiryQueryFilter) model() (models.Inquiry, error) {
	return models.Inquiry{
		Email:          f.Email,
		DestinationKey: f.DestinationKey,
		Status:         models.InquiryStatus(f.Status),
	}, nil
}
