package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/saptapadi/backend/internal/controllers/v1"
	"github.com/saptapadi/backend/internal/models"
	"github.com/saptapadi/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestVenue(t *testing.T, v v1.VenueEditable, expectedStatus ...int) v1.VenueResponse {
	if v.Name == "" {
		v.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.VenueEditable{v}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/venues", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var venue v1.VenueCreateResponse
	test.DecodeResponse(t, &r, &venue)

	if r.Code == http.StatusCreated {
		return venue.Data[0]
	}

	return v1.VenueResponse{}
}

// TestVenuesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestVenuesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestVenue(t, v1.VenueEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/venues", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.VenueListResponse
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

// TestVenuesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestVenuesOptions() {
	tests := []struct {
		name   string
		id     string // path at the venues endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No venue with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Venue exists", createTestVenue(suite.T(), v1.VenueEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/venues", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestVenuesCreateDuplicateName verifies that a venue name can only be used
// once per destination.
func (suite *TestSuiteStandard) TestVenuesCreateDuplicateName() {
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Lakeview Palace", DestinationKey: "udaipur"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/venues", []v1.VenueEditable{
		{Name: "Lakeview Palace", DestinationKey: "udaipur"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.VenueCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrVenueNameNotUnique.Error())

	// The same name works in another destination
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Lakeview Palace", DestinationKey: "goa"})
}

func (suite *TestSuiteStandard) TestVenuesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": "Missing bracket"`},
		{"Empty name", []v1.VenueEditable{{Name: " "}}},
		{"Negative price", []v1.VenueEditable{{Name: "Negative", StartingPrice: decimal.NewFromInt(-1)}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/venues", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestVenuesGetFilter() {
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Lakeview Palace", DestinationKey: "udaipur", Capacity: 400, Featured: true, Description: "Heritage palace on the lake"})
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Sunset Beach Resort", DestinationKey: "goa", Capacity: 250, Description: "Private beach access"})
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "City Palace Gardens", DestinationKey: "udaipur", Capacity: 800, Archived: true})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"Destination", "destination=udaipur", 2},
		{"Name", "name=palace", 2},
		{"Match prefix", "match=*palace", 1},
		{"Match contains", "match=*palace*", 2},
		{"Match no hit", "match=fort*", 0},
		{"Capacity", "capacity=300", 2},
		{"Featured", "featured=true", 1},
		{"Not archived", "archived=false", 2},
		{"Search description", "search=beach", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/venues?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.VenueListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestVenuesSorted verifies that venues are returned in alphabetical order.
func (suite *TestSuiteStandard) TestVenuesSorted() {
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Zanzibar Hall"})
	_ = createTestVenue(suite.T(), v1.VenueEditable{Name: "Amber Fort Lawns"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/venues", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.VenueListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Amber Fort Lawns", response.Data[0].Name)
	suite.Assert().Equal("Zanzibar Hall", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestVenuesUpdate() {
	venue := createTestVenue(suite.T(), v1.VenueEditable{Name: "Lakeview Palace", Capacity: 400})

	r := test.Request(suite.T(), http.MethodPatch, venue.Data.Links.Self, map[string]any{
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.VenueResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().True(updated.Data.Archived)
	suite.Assert().Equal("Lakeview Palace", updated.Data.Name)
	suite.Assert().Equal(int64(400), updated.Data.Capacity)
}

func (suite *TestSuiteStandard) TestVenuesDelete() {
	venue := createTestVenue(suite.T(), v1.VenueEditable{})

	r := test.Request(suite.T(), http.MethodDelete, venue.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, venue.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
