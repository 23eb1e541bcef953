package models_test

import (
	"time"

	"github.com/saptapadi/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWeddingTrimWhitespace() {
	wedding := suite.createTestWedding(models.Wedding{
		Name: " Ananya & Rohan ",
		Note: "\tThree day celebration \n",
	})

	suite.Assert().Equal("Ananya & Rohan", wedding.Name)
	suite.Assert().Equal("Three day celebration", wedding.Note)
}

func (suite *TestSuiteStandard) TestWeddingNameRequired() {
	err := models.DB.Create(&models.Wedding{Name: "  "}).Error
	suite.Assert().ErrorIs(err, models.ErrWeddingNameRequired)
}

func (suite *TestSuiteStandard) TestWeddingNegativeBudget() {
	err := models.DB.Create(&models.Wedding{
		Name:        "Test",
		TotalBudget: decimal.NewFromInt(-1),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTotalBudgetNegative)
}

func (suite *TestSuiteStandard) TestWeddingLocaleDefault() {
	wedding := suite.createTestWedding(models.Wedding{})
	suite.Assert().Equal("en-IN", wedding.CurrencyLocale)
}

func (suite *TestSuiteStandard) TestWeddingLocaleInvalid() {
	err := models.DB.Create(&models.Wedding{
		Name:           "Test",
		CurrencyLocale: "not a locale!",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyLocaleInvalid)
}

func (suite *TestSuiteStandard) TestWeddingDateUTC() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	suite.Require().Nil(err)

	wedding := suite.createTestWedding(models.Wedding{
		Date: time.Date(2027, 2, 14, 10, 0, 0, 0, loc),
	})

	suite.Assert().Equal(time.UTC, wedding.Date.Location())
}

func (suite *TestSuiteStandard) TestWeddingItemsOrder() {
	wedding := suite.createTestWedding(models.Wedding{})

	first := suite.createTestBudgetItem(models.BudgetItem{WeddingID: wedding.ID, Name: "First"})

	// Force a distinct, later creation timestamp
	second := models.BudgetItem{WeddingID: wedding.ID, Name: "Second"}
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	suite.createTestBudgetItem(second)

	items, err := wedding.Items(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(items, 2)
	suite.Assert().Equal("Second", items[0].Name)
	suite.Assert().Equal("First", items[1].Name)
}

func (suite *TestSuiteStandard) TestWeddingDeleteCascades() {
	wedding := suite.createTestWedding(models.Wedding{})
	item := suite.createTestBudgetItem(models.BudgetItem{WeddingID: wedding.ID})

	err := models.DB.Delete(&wedding).Error
	suite.Require().Nil(err)

	err = models.DB.First(&models.BudgetItem{}, item.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	wedding := suite.createTestWedding(models.Wedding{
		TotalBudget: decimal.NewFromInt(1000000),
	})

	summary, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalEstimated.IsZero())
	suite.Assert().True(summary.TotalActual.IsZero())
	suite.Assert().True(summary.TotalPaid.IsZero())
	suite.Assert().True(summary.Remaining.Equal(decimal.NewFromInt(1000000)))
	suite.Assert().True(summary.UtilizationPercent.IsZero())
	suite.Assert().Len(summary.Categories, 9)
}

func (suite *TestSuiteStandard) TestSummaryTotals() {
	wedding := suite.createTestWedding(models.Wedding{
		TotalBudget: decimal.NewFromInt(1000000),
	})

	// Actual cost known, partially paid
	suite.createTestBudgetItem(models.BudgetItem{
		WeddingID:     wedding.ID,
		CategoryID:    "photography",
		EstimatedCost: decimal.NewFromInt(250000),
		ActualCost:    decimal.NewNullDecimal(decimal.NewFromInt(240000)),
		AmountPaid:    decimal.NewFromInt(100000),
	})

	// Only estimated
	suite.createTestBudgetItem(models.BudgetItem{
		WeddingID:     wedding.ID,
		CategoryID:    "entertainment",
		EstimatedCost: decimal.NewFromInt(80000),
	})

	summary, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalEstimated.Equal(decimal.NewFromInt(330000)), "total estimated is %s", summary.TotalEstimated)
	suite.Assert().True(summary.TotalActual.Equal(decimal.NewFromInt(240000)), "total actual is %s", summary.TotalActual)
	suite.Assert().True(summary.TotalPaid.Equal(decimal.NewFromInt(100000)), "total paid is %s", summary.TotalPaid)
	suite.Assert().True(summary.Remaining.Equal(decimal.NewFromInt(760000)), "remaining is %s", summary.Remaining)
	suite.Assert().True(summary.Outstanding.Equal(decimal.NewFromInt(140000)), "outstanding is %s", summary.Outstanding)
	suite.Assert().True(summary.UtilizationPercent.Equal(decimal.NewFromInt(24)), "utilization is %s", summary.UtilizationPercent)

	for _, category := range summary.Categories {
		switch category.CategoryID {
		case "photography":
			// Effective cost prefers the actual cost
			suite.Assert().True(category.Total.Equal(decimal.NewFromInt(240000)), "photography total is %s", category.Total)
			suite.Assert().Equal(1, category.Items)
			suite.Assert().True(category.ShareOfBudget.Equal(decimal.NewFromInt(24)), "photography share is %s", category.ShareOfBudget)
		case "entertainment":
			suite.Assert().True(category.Total.Equal(decimal.NewFromInt(80000)), "entertainment total is %s", category.Total)
			suite.Assert().Equal(1, category.Items)
		default:
			suite.Assert().True(category.Total.IsZero())
			suite.Assert().Equal(0, category.Items)
		}
	}
}

// Unknown category keys count towards the totals, but are not part of the
// category display list.
func (suite *TestSuiteStandard) TestSummaryUnknownCategory() {
	wedding := suite.createTestWedding(models.Wedding{
		TotalBudget: decimal.NewFromInt(1000000),
	})

	suite.createTestBudgetItem(models.BudgetItem{
		WeddingID:     wedding.ID,
		CategoryID:    "fireworks",
		EstimatedCost: decimal.NewFromInt(50000),
	})

	summary, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalEstimated.Equal(decimal.NewFromInt(50000)))

	for _, category := range summary.Categories {
		suite.Assert().NotEqual("fireworks", category.CategoryID)
		suite.Assert().True(category.Total.IsZero())
	}
}

// The summary is a pure function of the item set: calling it twice must
// return the same result.
func (suite *TestSuiteStandard) TestSummaryIdempotent() {
	wedding := suite.createTestWedding(models.Wedding{
		TotalBudget: decimal.NewFromInt(2000000),
	})

	suite.createTestBudgetItem(models.BudgetItem{
		WeddingID:     wedding.ID,
		CategoryID:    "decor-florals",
		EstimatedCost: decimal.NewFromInt(300000),
		AmountPaid:    decimal.NewFromInt(300000),
	})

	first, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	second, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(first, second)
}

func (suite *TestSuiteStandard) TestSummaryNoBudget() {
	wedding := suite.createTestWedding(models.Wedding{})

	suite.createTestBudgetItem(models.BudgetItem{
		WeddingID:     wedding.ID,
		CategoryID:    "photography",
		EstimatedCost: decimal.NewFromInt(250000),
	})

	summary, err := wedding.Summary(models.DB)
	suite.Require().Nil(err)

	// Without a budget there is no meaningful utilization or share
	suite.Assert().True(summary.UtilizationPercent.IsZero())
	for _, category := range summary.Categories {
		suite.Assert().True(category.ShareOfBudget.IsZero(), "category %s has a share without a budget", category.CategoryID)
	}
}
