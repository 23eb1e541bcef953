package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Wedding errors
var (
	ErrWeddingNameRequired   = errors.New("the wedding name must be set")
	ErrTotalBudgetNegative   = errors.New("the total budget must not be negative")
	ErrCurrencyLocaleInvalid = errors.New("the currency locale is not a valid BCP 47 tag")
)

// Budget item errors
var (
	ErrBudgetItemNameRequired = errors.New("the budget item name must be set")
	ErrPaymentStatusInvalid   = errors.New("the payment status must be one of pending, partial, paid")
	ErrEstimatedCostNegative  = errors.New("the estimated cost must not be negative")
	ErrActualCostNegative     = errors.New("the actual cost must not be negative")
	ErrAmountPaidNegative     = errors.New("the amount paid must not be negative")
)

// Venue errors
var (
	ErrVenueNameRequired     = errors.New("the venue name must be set")
	ErrVenueNameNotUnique    = errors.New("this venue name is already in use for the destination")
	ErrStartingPriceNegative = errors.New("the starting price must not be negative")
)

// Inquiry errors
var (
	ErrInquiryNameRequired  = errors.New("the inquiry name must be set")
	ErrInquiryEmailRequired = errors.New("the inquiry email must be set")
	ErrInquiryStatusInvalid = errors.New("the inquiry status is invalid")
)
