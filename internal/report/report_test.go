package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rsharma/upi-tracker/internal/ledger"
	"rsharma/upi-tracker/internal/models"
)

func TestWriteTransaction(t *testing.T) {
	var buf bytes.Buffer
	WriteTransaction(&buf, models.Transaction{
		Date:          time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Category:      "Food",
		Description:   "coffee",
		MoneySpent:    decimal.NewFromInt(150),
		MoneyLeft:     decimal.NullDecimal{Decimal: decimal.NewFromInt(850), Valid: true},
		PaymentMethod: "UPI",
	})

	out := buf.String()
	assert.Contains(t, out, "2025-09-01")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "left=850.00")
}

func TestWriteTransactions(t *testing.T) {
	records := []models.Transaction{
		{
			Date:          time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			Category:      "Food",
			Description:   "coffee",
			MoneySpent:    decimal.NewFromInt(150),
			MoneyLeft:     decimal.NullDecimal{Decimal: decimal.NewFromInt(850), Valid: true},
			PaymentMethod: "UPI",
		},
		{
			Category:    "Other",
			Description: "no date or balance",
			MoneySpent:  decimal.NewFromInt(10),
		},
	}

	var buf bytes.Buffer
	WriteTransactions(&buf, records)

	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "coffee")
	assert.Contains(t, out, "850.00")
	assert.Contains(t, out, "unknown", "missing date renders as unknown")
	assert.Contains(t, out, "-", "absent balance renders as a dash")
}

func TestWriteSummary(t *testing.T) {
	s := ledger.Summary{
		Categories: []ledger.CategorySummary{
			{Category: "Food", Expense: decimal.NewFromInt(150), Income: decimal.Zero},
			{Category: "Income", Expense: decimal.Zero, Income: decimal.NewFromInt(500)},
		},
		TotalIncome:  decimal.NewFromInt(500),
		TotalExpense: decimal.NewFromInt(150),
		Net:          decimal.NewFromInt(350),
	}

	var buf bytes.Buffer
	WriteSummary(&buf, s)

	out := buf.String()
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "150.00")
	assert.Contains(t, out, "Total income:  500.00")
	assert.Contains(t, out, "Total expense: 150.00")
	assert.Contains(t, out, "Net:           350.00")
}
