package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus classifies how much of a budget item has been paid.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ParsePaymentStatus validates a payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch status := PaymentStatus(s); status {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return status, nil
	}

	return "", ErrPaymentStatusInvalid
}

// BudgetItem is a single expense line belonging to one wedding.
//
// The payment status is not persisted. It is derived from the amounts on
// every read so that editing costs and payments independently cannot leave
// a stale classification behind.
type BudgetItem struct {
	DefaultModel
	WeddingID     uuid.UUID
	Wedding       Wedding             `json:"-"`
	Name          string              // Required, e.g. "Photographer booking"
	CategoryID    string              // Optional key into the planner category table
	EstimatedCost decimal.Decimal     `gorm:"type:DECIMAL(20,8)"` // Planned cost
	ActualCost    decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Incurred cost, null until known
	AmountPaid    decimal.Decimal     `gorm:"type:DECIMAL(20,8)"` // Defaults to zero
	Note          string
}

func (b *BudgetItem) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetItem)
	return b.checkIntegrity(tx, *toSave)
}

func (b *BudgetItem) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(BudgetItem)

	if tx.Statement.Changed("WeddingID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the wedding the item references exists.
func (b *BudgetItem) checkIntegrity(tx *gorm.DB, toSave BudgetItem) error {
	return tx.First(&Wedding{}, toSave.WeddingID).Error
}

func (b *BudgetItem) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

func (b *BudgetItem) AfterSave(_ *gorm.DB) error {
	if b.Name == "" {
		return ErrBudgetItemNameRequired
	}

	if b.EstimatedCost.IsNegative() {
		return ErrEstimatedCostNegative
	}

	if b.ActualCost.Valid && b.ActualCost.Decimal.IsNegative() {
		return ErrActualCostNegative
	}

	if b.AmountPaid.IsNegative() {
		return ErrAmountPaidNegative
	}

	return nil
}

// EffectiveCost is the cost reconciliation works with: the actual cost once
// it is known, the estimate before that.
func (b BudgetItem) EffectiveCost() decimal.Decimal {
	if b.ActualCost.Valid {
		return b.ActualCost.Decimal
	}

	return b.EstimatedCost
}

// PaymentStatus derives the payment classification.
//
// The "paid" boundary is inclusive: paying exactly the effective cost counts
// as paid. An item with no payment recorded is always "pending", even when
// its effective cost is zero.
func (b BudgetItem) PaymentStatus() PaymentStatus {
	if !b.AmountPaid.IsPositive() {
		return PaymentStatusPending
	}

	if b.AmountPaid.GreaterThanOrEqual(b.EffectiveCost()) {
		return PaymentStatusPaid
	}

	return PaymentStatusPartial
}
