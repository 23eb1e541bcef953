package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Venue is an entry in the venue directory managed from the back office.
type Venue struct {
	DefaultModel
	Name           string `gorm:"uniqueIndex:venue_name_destination"`
	DestinationKey string `gorm:"uniqueIndex:venue_name_destination"` // Destination key from the planner tables
	Capacity       int64  // Maximum number of guests
	StartingPrice  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Starting package price
	Description    string
	Featured       bool // Shown on the marketing pages
	Archived       bool // Hidden from the public directory
}

func (v *Venue) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Description = strings.TrimSpace(v.Description)

	return nil
}

func (v *Venue) AfterSave(_ *gorm.DB) error {
	if v.Name == "" {
		return ErrVenueNameRequired
	}

	if v.StartingPrice.IsNegative() {
		return ErrStartingPriceNegative
	}

	return nil
}
