// Package importparser reads externally produced CSV files into raw rows for
// bulk import. Headers are matched case-insensitively after trimming, and
// the legacy "amount" header is accepted as an alias for "money_spent".
package importparser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
)

// column names recognized in import files.
const (
	colDate          = "date"
	colCategory      = "category"
	colDescription   = "description"
	colMoneySpent    = "money_spent"
	colAmount        = "amount" // legacy alias for money_spent
	colMoneyLeft     = "money_left"
	colPaymentMethod = "payment_method"
)

// Parser reads import files into raw rows.
type Parser struct {
	delimiter rune
	logger    logging.Logger
}

// NewParser creates an import parser using the given CSV delimiter.
func NewParser(delimiter rune, logger logging.Logger) *Parser {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{delimiter: delimiter, logger: logger}
}

// ParseFile reads a CSV file into raw rows in file order. Missing columns
// are tolerated: the corresponding fields stay empty and are given defined
// defaults during normalization. Rows shorter than the header are padded.
func (p *Parser) ParseFile(path string) ([]models.RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening import file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close import file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing import file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("import file %s has no header row", path)
	}

	index := headerIndex(records[0])
	if _, ok := index[colDate]; !ok {
		p.logger.WithField(logging.FieldFile, path).Warn("Import file has no date column")
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, models.RawRow{
			Date:          fieldAt(record, index, colDate),
			Category:      fieldAt(record, index, colCategory),
			Description:   fieldAt(record, index, colDescription),
			MoneySpent:    amountField(record, index),
			MoneyLeft:     fieldAt(record, index, colMoneyLeft),
			PaymentMethod: fieldAt(record, index, colPaymentMethod),
		})
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Parsed import file")
	return rows, nil
}

// headerIndex maps lower-cased, trimmed header names to column positions.
// The first occurrence of a duplicated header wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// amountField prefers money_spent and falls back to the legacy amount alias.
func amountField(record []string, index map[string]int) string {
	if v := fieldAt(record, index, colMoneySpent); v != "" {
		return v
	}
	return fieldAt(record, index, colAmount)
}

// fieldAt returns the named column's value, or empty when the column is
// absent or the row is too short.
func fieldAt(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
