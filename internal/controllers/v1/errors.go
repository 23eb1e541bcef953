package v1

import (
	"errors"
	"net/http"

	"github.com/saptapadi/backend/internal/models"
	"github.com/saptapadi/backend/internal/planner"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// planStatus returns the appropriate status for a planner error. All
// planner errors are validation errors on the input.
func planStatus(err error) int {
	if errors.Is(err, planner.ErrBudgetNotPositive) || errors.Is(err, planner.ErrGuestCountNotPositive) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
