// Package store provides persistence for the transaction ledger and the
// category rule configuration.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"rsharma/upi-tracker/internal/dateutils"
	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
)

// ledgerRow mirrors one line of the store file. All fields are strings so a
// row with a bad number or date never fails the whole load; coercion to the
// canonical record shape happens explicitly afterwards.
type ledgerRow struct {
	Date          string `csv:"date"`
	Category      string `csv:"category"`
	Description   string `csv:"description"`
	MoneySpent    string `csv:"money_spent"`
	MoneyLeft     string `csv:"money_left"`
	PaymentMethod string `csv:"payment_method"`
}

// LedgerStore persists the ledger as a flat CSV file. Load preserves append
// order and Save is a full overwrite. A single local user running one
// command at a time is assumed; concurrent invocations may race on the file.
type LedgerStore struct {
	path          string
	delimiter     rune
	paymentMethod string
	logger        logging.Logger
}

// NewLedgerStore creates a store handle for the given file path.
// paymentMethod fills rows loaded without one; it should match the engine's
// configured default so load and append stay consistent.
func NewLedgerStore(path string, delimiter rune, paymentMethod string, logger logging.Logger) *LedgerStore {
	if delimiter == 0 {
		delimiter = ','
	}
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LedgerStore{path: path, delimiter: delimiter, paymentMethod: paymentMethod, logger: logger}
}

// Path returns the store file path.
func (s *LedgerStore) Path() string {
	return s.path
}

// Init creates the data directory and an empty store file with headers if
// one does not exist yet. It is an explicit operation, not an import-time
// side effect.
func (s *LedgerStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return &PersistenceError{Op: "init", Path: s.path, Err: err}
	}
	if _, err := os.Stat(s.path); err == nil {
		s.logger.WithField(logging.FieldFile, s.path).Debug("Store file already exists")
		return nil
	}
	if err := s.Save([]models.Transaction{}); err != nil {
		return err
	}
	s.logger.WithField(logging.FieldFile, s.path).Info("Created empty transaction store")
	return nil
}

// Load reads the full ledger in original append order. Per-field coercion is
// lenient: an unparseable amount becomes zero, a missing or unparseable
// running balance stays absent and an unparseable date becomes the
// unknown-date sentinel.
func (s *LedgerStore) Load() ([]models.Transaction, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close store file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter

	var rows []ledgerRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Transaction{}, nil
		}
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	records := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.RawRow(row).Normalize(s.paymentMethod))
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Debug("Loaded transaction store")
	return records, nil
}

// Save overwrites the store file with the given records. The whole ledger is
// written on every save; there is no incremental append.
func (s *LedgerStore) Save(records []models.Transaction) error {
	if records == nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: fmt.Errorf("cannot save nil records")}
	}

	rows := make([]ledgerRow, 0, len(records))
	for _, tx := range records {
		rows = append(rows, formatRow(tx))
	}

	file, err := os.Create(s.path)
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close store file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = s.delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Debug("Saved transaction store")
	return nil
}

// formatRow renders a canonical record back to its CSV representation.
// Unknown dates and absent balances serialize to empty fields.
func formatRow(tx models.Transaction) ledgerRow {
	row := ledgerRow{
		Category:      tx.Category,
		Description:   tx.Description,
		MoneySpent:    tx.MoneySpent.StringFixed(2),
		PaymentMethod: tx.PaymentMethod,
	}
	if tx.HasDate() {
		row.Date = dateutils.ToISODate(tx.Date)
	}
	if tx.MoneyLeft.Valid {
		row.MoneyLeft = tx.MoneyLeft.Decimal.StringFixed(2)
	}
	return row
}
