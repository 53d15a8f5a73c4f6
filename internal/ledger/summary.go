package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"rsharma/upi-tracker/internal/models"
)

// CategorySummary aggregates one category's income and expense components.
type CategorySummary struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// Summary is the result of summarizing the ledger: a per-category table
// ordered by descending total expense, plus grand totals.
type Summary struct {
	Categories   []CategorySummary
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// Summarize partitions each record's signed amount into income (absolute
// value when negative) and expense (value when positive) components, groups
// by category and computes grand totals with net = income − expense. A nil
// filter summarizes the whole ledger; otherwise only records whose date
// falls in the given calendar month are counted.
func (e *Engine) Summarize(filter *models.MonthFilter) (Summary, error) {
	records, err := e.store.Load()
	if err != nil {
		return Summary{}, err
	}

	byCategory := make(map[string]*CategorySummary)
	var order []string
	summary := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, tx := range applyFilter(records, filter) {
		income, expense := decimal.Zero, decimal.Zero
		if tx.MoneySpent.IsNegative() {
			income = tx.MoneySpent.Abs()
		} else {
			expense = tx.MoneySpent
		}

		group, ok := byCategory[tx.Category]
		if !ok {
			group = &CategorySummary{
				Category: tx.Category,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			}
			byCategory[tx.Category] = group
			order = append(order, tx.Category)
		}
		group.Income = group.Income.Add(income)
		group.Expense = group.Expense.Add(expense)

		summary.TotalIncome = summary.TotalIncome.Add(income)
		summary.TotalExpense = summary.TotalExpense.Add(expense)
	}

	summary.Categories = make([]CategorySummary, 0, len(order))
	for _, name := range order {
		summary.Categories = append(summary.Categories, *byCategory[name])
	}
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Expense.GreaterThan(summary.Categories[j].Expense)
	})

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
