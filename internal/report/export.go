package report

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"

	"rsharma/upi-tracker/internal/ledger"
	"rsharma/upi-tracker/internal/logging"
)

// SummaryExporter renders a summary in a machine-readable format.
type SummaryExporter struct {
	logger logging.Logger
}

// NewSummaryExporter creates a summary exporter.
func NewSummaryExporter(logger logging.Logger) *SummaryExporter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SummaryExporter{logger: logger}
}

// summaryDocument is the serialized shape of a summary. Amounts are fixed to
// two decimal places as strings so downstream tools never see float noise.
type summaryDocument struct {
	Categories   []categoryRow `json:"categories"`
	TotalIncome  string        `json:"total_income"`
	TotalExpense string        `json:"total_expense"`
	Net          string        `json:"net"`
}

type categoryRow struct {
	Category string `json:"category" csv:"category"`
	Expense  string `json:"expense" csv:"expense"`
	Income   string `json:"income" csv:"income"`
}

// Export renders the summary in the given format ("json" or "csv").
func (e *SummaryExporter) Export(s ledger.Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return e.exportJSON(s)
	case "csv":
		return e.exportCSV(s)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *SummaryExporter) exportJSON(s ledger.Summary) ([]byte, error) {
	doc := summaryDocument{
		Categories:   categoryRows(s),
		TotalIncome:  s.TotalIncome.StringFixed(2),
		TotalExpense: s.TotalExpense.StringFixed(2),
		Net:          s.Net.StringFixed(2),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return data, nil
}

// exportCSV writes only the per-category table; grand totals are derivable
// from it and would break the column shape.
func (e *SummaryExporter) exportCSV(s ledger.Summary) ([]byte, error) {
	rows := categoryRows(s)
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return []byte(out), nil
}

func categoryRows(s ledger.Summary) []categoryRow {
	rows := make([]categoryRow, 0, len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, categoryRow{
			Category: c.Category,
			Expense:  c.Expense.StringFixed(2),
			Income:   c.Income.StringFixed(2),
		})
	}
	return rows
}
