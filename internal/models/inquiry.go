package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// InquiryStatus tracks how far an inquiry has been worked in the back office.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is a lead captured from the marketing site's contact forms.
type Inquiry struct {
	DefaultModel
	Name           string
	Email          string
	Phone          string
	Message        string
	DestinationKey string        // Destination the lead is interested in
	EventDate      time.Time     // Tentative wedding date, zero when unknown
	Status         InquiryStatus // Defaults to "new"
}

func (i *Inquiry) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Message = strings.TrimSpace(i.Message)

	if i.Status == "" {
		i.Status = InquiryStatusNew
	}

	if !i.EventDate.IsZero() {
		i.EventDate = i.EventDate.In(time.UTC)
	}

	return nil
}

func (i *Inquiry) AfterSave(_ *gorm.DB) error {
	if i.Name == "" {
		return ErrInquiryNameRequired
	}

	if i.Email == "" {
		return ErrInquiryEmailRequired
	}

	switch i.Status {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusClosed:
	default:
		return ErrInquiryStatusInvalid
	}

	return nil
}
