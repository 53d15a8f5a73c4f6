// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rsharma/upi-tracker/internal/dateutils"
)

// Reserved category labels. CategoryIncome is assigned directly by the
// ledger engine and never produced by the classifier; CategoryOther is the
// classifier's unconditional fallback.
const (
	CategoryIncome = "Income"
	CategoryOther  = "Other"
)

// DefaultPaymentMethod is used when a row arrives without one.
const DefaultPaymentMethod = "UPI"

// Transaction is one entry in the ledger.
//
// MoneySpent is signed: positive amounts are expenses, income is stored as
// the negated income amount so balance arithmetic stays uniform.
// MoneyLeft is the running balance after this transaction; it may be invalid
// (absent) on historical rows imported with missing data.
// A zero Date is the "unknown date" sentinel for rows whose date could not
// be parsed.
type Transaction struct {
	Date          time.Time
	Category      string
	Description   string
	MoneySpent    decimal.Decimal
	MoneyLeft     decimal.NullDecimal
	PaymentMethod string
}

// HasDate reports whether the transaction carries a usable calendar date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// NeedsCategory reports whether the category field is unset. Whitespace-only
// values count as unset.
func (t Transaction) NeedsCategory() bool {
	return strings.TrimSpace(t.Category) == ""
}

// String renders the transaction for confirmation output.
func (t Transaction) String() string {
	date := "unknown"
	if t.HasDate() {
		date = dateutils.ToISODate(t.Date)
	}
	left := "-"
	if t.MoneyLeft.Valid {
		left = t.MoneyLeft.Decimal.StringFixed(2)
	}
	return fmt.Sprintf("%s | %-10s | %s | spent=%s left=%s | %s",
		date, t.Category, t.Description, t.MoneySpent.StringFixed(2), left, t.PaymentMethod)
}

// RawRow is an externally parsed row before coercion to a Transaction.
// All fields are raw strings exactly as they appeared in the source file.
type RawRow struct {
	Date          string
	Category      string
	Description   string
	MoneySpent    string
	MoneyLeft     string
	PaymentMethod string
}

// Normalize coerces a raw row to the canonical record shape. Every coercion
// maps to a defined default instead of an error: an unparseable amount
// becomes zero, an unparseable date becomes the unknown-date sentinel and an
// empty payment method falls back to the given default.
func (r RawRow) Normalize(defaultPaymentMethod string) Transaction {
	tx := Transaction{
		Category:      strings.TrimSpace(r.Category),
		Description:   strings.TrimSpace(r.Description),
		MoneySpent:    ParseAmount(r.MoneySpent),
		MoneyLeft:     ParseNullAmount(r.MoneyLeft),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}
	if date, _, err := dateutils.ParseDate(r.Date); err == nil {
		tx.Date = date
	}
	if tx.PaymentMethod == "" {
		tx.PaymentMethod = defaultPaymentMethod
	}
	return tx
}

// ParseAmount parses a decimal amount string, returning zero for anything
// that does not parse. Thousands separators are tolerated.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNullAmount parses an optional decimal amount string. Empty or
// unparseable input yields an invalid (absent) value rather than zero, so
// a missing running balance stays distinguishable from a zero balance.
func ParseNullAmount(s string) decimal.NullDecimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// MonthFilter selects transactions whose date falls in a single calendar
// month. Use a nil *MonthFilter for "all months".
type MonthFilter struct {
	Year  int
	Month time.Month
}

// Matches reports whether the transaction's date falls inside the filter
// month's calendar window. Transactions with an unknown date never match.
func (f MonthFilter) Matches(t Transaction) bool {
	if !t.HasDate() {
		return false
	}
	start := dateutils.StartOfMonth(time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, t.Date.Location()))
	end := dateutils.EndOfMonth(start).AddDate(0, 0, 1)
	return !t.Date.Before(start) && t.Date.Before(end)
}

// ParseMonthFilter parses a "YYYY-MM" selector.
func ParseMonthFilter(s string) (MonthFilter, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return MonthFilter{}, fmt.Errorf("invalid month selector %q (want YYYY-MM): %w", s, err)
	}
	return MonthFilter{Year: t.Year(), Month: t.Month()}, nil
}
