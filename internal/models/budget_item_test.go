package models_test

import (
	"github.com/google/uuid"
	"github.com/saptapadi/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestParsePaymentStatus() {
	for _, valid := range []string{"pending", "partial", "paid"} {
		status, err := models.ParsePaymentStatus(valid)
		suite.Assert().Nil(err)
		suite.Assert().Equal(models.PaymentStatus(valid), status)
	}

	_, err := models.ParsePaymentStatus("overdue")
	suite.Assert().ErrorIs(err, models.ErrPaymentStatusInvalid)
}

func (suite *TestSuiteStandard) TestBudgetItemNameRequired() {
	wedding := suite.createTestWedding(models.Wedding{})

	err := models.DB.Create(&models.BudgetItem{
		WeddingID: wedding.ID,
		Name:      " ",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetItemNameRequired)
}

func (suite *TestSuiteStandard) TestBudgetItemNegativeAmounts() {
	wedding := suite.createTestWedding(models.Wedding{})

	tests := []struct {
		name string
		item models.BudgetItem
		err  error
	}{
		{
			"estimated",
			models.BudgetItem{EstimatedCost: decimal.NewFromInt(-1)},
			models.ErrEstimatedCostNegative,
		},
		{
			"actual",
			models.BudgetItem{ActualCost: decimal.NewNullDecimal(decimal.NewFromInt(-1))},
			models.ErrActualCostNegative,
		},
		{
			"paid",
			models.BudgetItem{AmountPaid: decimal.NewFromInt(-1)},
			models.ErrAmountPaidNegative,
		},
	}

	for _, tt := range tests {
		item := tt.item
		item.WeddingID = wedding.ID
		item.Name = tt.name

		err := models.DB.Create(&item).Error
		suite.Assert().ErrorIs(err, tt.err, "test case %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestBudgetItemIntegrity() {
	err := models.DB.Create(&models.BudgetItem{
		WeddingID: uuid.New(),
		Name:      "Orphaned",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestEffectiveCost() {
	estimatedOnly := models.BudgetItem{EstimatedCost: decimal.NewFromInt(250000)}
	suite.Assert().True(estimatedOnly.EffectiveCost().Equal(decimal.NewFromInt(250000)))

	withActual := models.BudgetItem{
		EstimatedCost: decimal.NewFromInt(250000),
		ActualCost:    decimal.NewNullDecimal(decimal.NewFromInt(240000)),
	}
	suite.Assert().True(withActual.EffectiveCost().Equal(decimal.NewFromInt(240000)))

	// An actual cost of zero is a valid value and takes precedence
	zeroActual := models.BudgetItem{
		EstimatedCost: decimal.NewFromInt(250000),
		ActualCost:    decimal.NewNullDecimal(decimal.Zero),
	}
	suite.Assert().True(zeroActual.EffectiveCost().IsZero())
}

func (suite *TestSuiteStandard) TestPaymentStatus() {
	tests := []struct {
		name      string
		estimated int64
		actual    *int64
		paid      int64
		want      models.PaymentStatus
	}{
		{"nothing paid", 100000, nil, 0, models.PaymentStatusPending},
		{"partially paid", 100000, nil, 50000, models.PaymentStatusPartial},
		{"paid exactly", 100000, nil, 100000, models.PaymentStatusPaid},
		{"overpaid", 100000, nil, 120000, models.PaymentStatusPaid},
		{"paid against actual", 100000, ptr(int64(80000)), 80000, models.PaymentStatusPaid},
		{"partial against actual", 100000, ptr(int64(120000)), 100000, models.PaymentStatusPartial},
		{"zero cost nothing paid", 0, nil, 0, models.PaymentStatusPending},
		{"zero actual nothing paid", 100000, ptr(int64(0)), 0, models.PaymentStatusPending},
	}

	for _, tt := range tests {
		item := models.BudgetItem{
			EstimatedCost: decimal.NewFromInt(tt.estimated),
			AmountPaid:    decimal.NewFromInt(tt.paid),
		}
		if tt.actual != nil {
			item.ActualCost = decimal.NewNullDecimal(decimal.NewFromInt(*tt.actual))
		}

		suite.Assert().Equal(tt.want, item.PaymentStatus(), "test case %q", tt.name)
	}
}

func ptr[T any](v T) *T {
	return &v
}
