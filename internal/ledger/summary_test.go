package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsharma/upi-tracker/internal/models"
)

func TestSummarize_Empty(t *testing.T) {
	engine := newTestEngine(&memStore{})

	summary, err := engine.Summarize(nil)

	require.NoError(t, err)
	assert.Empty(t, summary.Categories)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Net.IsZero())
}

func TestSummarize_GroupsByCategory(t *testing.T) {
	store := &memStore{
		records: []models.Transaction{
			{Date: date("2025-09-01"), Category: "Food", MoneySpent: dec("150")},
			{Date: date("2025-09-02"), Category: "Transport", MoneySpent: dec("80")},
			{Date: date("2025-09-03"), Category: "Food", MoneySpent: dec("50")},
			{Date: date("2025-09-04"), Category: models.CategoryIncome, MoneySpent: dec("-500")},
		},
	}
	engine := newTestEngine(store)

	summary, err := engine.Summarize(nil)

	require.NoError(t, err)
	require.Len(t, summary.Categories, 3)

	// Ordered by descending expense; income rows contribute zero expense.
	assert.Equal(t, "Food", summary.Categories[0].Category)
	assert.True(t, summary.Categories[0].Expense.Equal(dec("200")))
	assert.Equal(t, "Transport", summary.Categories[1].Category)
	assert.True(t, summary.Categories[1].Expense.Equal(dec("80")))
	assert.Equal(t, models.CategoryIncome, summary.Categories[2].Category)
	assert.True(t, summary.Categories[2].Income.Equal(dec("500")))
	assert.True(t, summary.Categories[2].Expense.IsZero())

	assert.True(t, summary.TotalIncome.Equal(dec("500")))
	assert.True(t, summary.TotalExpense.Equal(dec("280")))
	assert.True(t, summary.Net.Equal(dec("220")))
}

func TestSummarize_TieKeepsFirstSeenOrder(t *testing.T) {
	store := &memStore{
		records: []models.Transaction{
			{Date: date("2025-09-01"), Category: "Transport", MoneySpent: dec("100")},
			{Date: date("2025-09-02"), Category: "Food", MoneySpent: dec("100")},
		},
	}
	engine := newTestEngine(store)

	summary, err := engine.Summarize(nil)

	require.NoError(t, err)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Transport", summary.Categories[0].Category)
	assert.Equal(t, "Food", summary.Categories[1].Category)
}

func TestSummarize_MonthFilter(t *testing.T) {
	store := &memStore{
		records: []models.Transaction{
			{Date: date("2025-08-30"), Category: "Food", MoneySpent: dec("999")},
			{Date: date("2025-09-01"), Category: "Food", MoneySpent: dec("150")},
			{Date: date("2025-10-01"), Category: "Food", MoneySpent: dec("42")},
		},
	}
	engine := newTestEngine(store)

	filter := &models.MonthFilter{Year: 2025, Month: time.September}
	summary, err := engine.Summarize(filter)

	require.NoError(t, err)
	require.Len(t, summary.Categories, 1)
	assert.True(t, summary.TotalExpense.Equal(dec("150")))
}

func TestSummarize_UndatedRowsExcludedByFilter(t *testing.T) {
	store := &memStore{
		records: []models.Transaction{
			{Category: "Food", MoneySpent: dec("10")},
			{Date: date("2025-09-01"), Category: "Food", MoneySpent: dec("150")},
		},
	}
	engine := newTestEngine(store)

	filter := &models.MonthFilter{Year: 2025, Month: time.September}
	summary, err := engine.Summarize(filter)

	require.NoError(t, err)
	assert.True(t, summary.TotalExpense.Equal(dec("150")))

	unfiltered, err := engine.Summarize(nil)
	require.NoError(t, err)
	assert.True(t, unfiltered.TotalExpense.Equal(dec("160")))
}

// Walks a fresh store through the typical first session: an anchored expense,
// an income event and a month-scoped summary.
func TestFirstSessionFlow(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(store)

	start := dec("1000")
	coffee, err := engine.AddExpense(models.Transaction{
		Date:        date("2025-09-01"),
		Description: "Starbucks coffee",
		MoneySpent:  dec("150"),
	}, nil, &start)
	require.NoError(t, err)
	assert.Equal(t, "Food", coffee.Category)
	assert.True(t, coffee.MoneyLeft.Decimal.Equal(dec("850")))

	pocket, err := engine.AddIncome(models.Transaction{
		Date:        date("2025-09-02"),
		Description: "Pocket money",
	}, dec("500"), nil)
	require.NoError(t, err)
	assert.True(t, pocket.MoneySpent.Equal(dec("-500")))
	assert.True(t, pocket.MoneyLeft.Decimal.Equal(dec("1350")))

	filter, err := models.ParseMonthFilter("2025-09")
	require.NoError(t, err)
	summary, err := engine.Summarize(&filter)
	require.NoError(t, err)

	assert.True(t, summary.TotalIncome.Equal(dec("500")))
	assert.True(t, summary.TotalExpense.Equal(dec("150")))
	assert.True(t, summary.Net.Equal(dec("350")))

	records, err := engine.Tail(10, &filter)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Starbucks coffee", records[0].Description)
	assert.Equal(t, "Pocket money", records[1].Description)
}
