package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/saptapadi/backend/internal/controllers/v1"
	"github.com/saptapadi/backend/internal/models"
	"github.com/saptapadi/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestInquiry(t *testing.T, i v1.InquiryEditable, expectedStatus ...int) v1.InquiryResponse {
	if i.Name == "" {
		i.Name = uuid.NewString()
	}

	if i.Email == "" {
		i.Email = fmt.Sprintf("%s@example.com", uuid.NewString())
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.InquiryEditable{i}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/inquiries", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var inquiry v1.InquiryCreateResponse
	test.DecodeResponse(t, &r, &inquiry)

	if r.Code == http.StatusCreated {
		return inquiry.Data[0]
	}

	return v1.InquiryResponse{}
}

// TestInquiriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestInquiriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestInquiry(t, v1.InquiryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/inquiries", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.InquiryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestInquiriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestInquiriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the inquiries endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No inquiry with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Inquiry exists", createTestInquiry(suite.T(), v1.InquiryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/inquiries", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestInquiriesCreate verifies the capture of a lead the way the contact
// form submits it.
func (suite *TestSuiteStandard) TestInquiriesCreate() {
	inquiry := createTestInquiry(suite.T(), v1.InquiryEditable{
		Name:           "Priya Sharma",
		Email:          "priya@example.com",
		Phone:          "+91 98765 43210",
		Message:        "Looking at a winter wedding for around 200 guests",
		DestinationKey: "udaipur",
	})

	suite.Assert().Equal(models.InquiryStatusNew, inquiry.Data.Status)
	suite.Assert().Equal("Priya Sharma", inquiry.Data.Name)
}

func (suite *TestSuiteStandard) TestInquiriesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": "Missing bracket"`},
		{"Empty name", []v1.InquiryEditable{{Name: " ", Email: "priya@example.com"}}},
		{"Missing email", []v1.InquiryEditable{{Name: "Priya Sharma"}}},
		{"Invalid status", []v1.InquiryEditable{{Name: "Priya Sharma", Email: "priya@example.com", Status: "ghosted"}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/inquiries", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestInquiriesGetFilter() {
	_ = createTestInquiry(suite.T(), v1.InquiryEditable{Name: "Priya Sharma", Email: "priya@example.com", DestinationKey: "udaipur", Message: "Winter wedding"})
	_ = createTestInquiry(suite.T(), v1.InquiryEditable{Name: "Rohan Mehta", Email: "rohan@example.com", DestinationKey: "goa", Status: models.InquiryStatusContacted})
	_ = createTestInquiry(suite.T(), v1.InquiryEditable{Name: "Ananya Iyer", Email: "ananya@example.com", DestinationKey: "udaipur", Message: "Palace venues only"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"Email", "email=priya@example.com", 1},
		{"Destination", "destination=udaipur", 2},
		{"Status new", "status=new", 2},
		{"Status contacted", "status=contacted", 1},
		{"Name", "name=rohan", 1},
		{"Search message", "search=palace", 1},
		{"Search name", "search=ananya", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/inquiries?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InquiryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestInquiriesUpdateStatus verifies the workflow transition a planner
// performs after reaching out to a lead.
func (suite *TestSuiteStandard) TestInquiriesUpdateStatus() {
	inquiry := createTestInquiry(suite.T(), v1.InquiryEditable{})
	suite.Assert().Equal(models.InquiryStatusNew, inquiry.Data.Status)

	r := test.Request(suite.T(), http.MethodPatch, inquiry.Data.Links.Self, map[string]any{
		"status": "contacted",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.InquiryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(models.InquiryStatusContacted, updated.Data.Status)
}

func (suite *TestSuiteStandard) TestInquiriesUpdateInvalidStatus() {
	inquiry := createTestInquiry(suite.T(), v1.InquiryEditable{})

	r := test.Request(suite.T(), http.MethodPatch, inquiry.Data.Links.Self, map[string]any{
		"status": "ghosted",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.InquiryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, models.ErrInquiryStatusInvalid.Error())
}

func (suite *TestSuiteStandard) TestInquiriesDelete() {
	inquiry := createTestInquiry(suite.T(), v1.InquiryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, inquiry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, inquiry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
