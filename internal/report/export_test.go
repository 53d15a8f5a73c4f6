package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsharma/upi-tracker/internal/ledger"
)

func sampleSummary() ledger.Summary {
	return ledger.Summary{
		Categories: []ledger.CategorySummary{
			{Category: "Food", Expense: decimal.NewFromInt(150), Income: decimal.Zero},
			{Category: "Income", Expense: decimal.Zero, Income: decimal.NewFromInt(500)},
		},
		TotalIncome:  decimal.NewFromInt(500),
		TotalExpense: decimal.NewFromInt(150),
		Net:          decimal.NewFromInt(350),
	}
}

func TestSummaryExporter_JSON(t *testing.T) {
	e := NewSummaryExporter(nil)

	data, err := e.Export(sampleSummary(), "json")
	require.NoError(t, err)

	var doc struct {
		Categories []struct {
			Category string `json:"category"`
			Expense  string `json:"expense"`
			Income   string `json:"income"`
		} `json:"categories"`
		TotalIncome  string `json:"total_income"`
		TotalExpense string `json:"total_expense"`
		Net          string `json:"net"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Categories, 2)
	assert.Equal(t, "Food", doc.Categories[0].Category)
	assert.Equal(t, "150.00", doc.Categories[0].Expense)
	assert.Equal(t, "500.00", doc.TotalIncome)
	assert.Equal(t, "350.00", doc.Net)
}

func TestSummaryExporter_CSV(t *testing.T) {
	e := NewSummaryExporter(nil)

	data, err := e.Export(sampleSummary(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "category,expense,income", lines[0])
	assert.Equal(t, "Food,150.00,0.00", lines[1])
	assert.Equal(t, "Income,0.00,500.00", lines[2])
}

func TestSummaryExporter_UnsupportedFormat(t *testing.T) {
	e := NewSummaryExporter(nil)

	_, err := e.Export(sampleSummary(), "xml")
	assert.Error(t, err)
}
