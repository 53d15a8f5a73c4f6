// Package ledger maintains the append-only transaction log: it derives each
// new record's running balance from the prior record (or an explicit anchor),
// keeps categories consistent through the classifier and delegates durable
// storage to an external store.
package ledger

import (
	"github.com/shopspring/decimal"

	"rsharma/upi-tracker/internal/classifier"
	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
)

// Store is the persistence collaborator. Load must preserve original append
// order; Save is a full overwrite. Errors from either are propagated to the
// caller unchanged and abort the operation with no partial state change.
type Store interface {
	Load() ([]models.Transaction, error)
	Save([]models.Transaction) error
}

// Engine owns the ledger read-modify-write cycle. Every operation loads the
// whole ledger, works on it in memory and persists the full result, so a
// mutation either fully succeeds or fully fails.
type Engine struct {
	store         Store
	classifier    *classifier.Classifier
	paymentMethod string
	logger        logging.Logger
}

// NewEngine creates a ledger engine bound to an explicit store handle.
// defaultPaymentMethod fills rows that arrive without one.
func NewEngine(store Store, cls *classifier.Classifier, defaultPaymentMethod string, logger logging.Logger) *Engine {
	if defaultPaymentMethod == "" {
		defaultPaymentMethod = models.DefaultPaymentMethod
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		store:         store,
		classifier:    cls,
		paymentMethod: defaultPaymentMethod,
		logger:        logger,
	}
}

// AddExpense appends one expense record. An empty tx.Category means
// "classify for me". resultingBalance, when set, is used verbatim as the new
// record's running balance. Otherwise the balance is computed as base minus
// spent, where the base is startingBalance if given, else the last record's
// balance. With neither anchor nor an explicit resulting balance the
// operation fails with ErrMissingBalanceAnchor. After the append the whole
// ledger is re-run
// through the classifier so the new row and any previously unclassified rows
// get labels; already-set categories are never overwritten.
func (e *Engine) AddExpense(tx models.Transaction, resultingBalance, startingBalance *decimal.Decimal) (models.Transaction, error) {
	records, err := e.store.Load()
	if err != nil {
		return models.Transaction{}, err
	}

	base, haveBase := e.baseBalance(records, startingBalance)
	switch {
	case resultingBalance != nil:
		tx.MoneyLeft = decimal.NullDecimal{Decimal: *resultingBalance, Valid: true}
	case !haveBase:
		return models.Transaction{}, ErrMissingBalanceAnchor
	default:
		tx.MoneyLeft = decimal.NullDecimal{Decimal: base.Sub(tx.MoneySpent), Valid: true}
	}

	if tx.PaymentMethod == "" {
		tx.PaymentMethod = e.paymentMethod
	}

	records = append(records, tx)
	records = e.classifier.ClassifyAll(records)

	if err := e.store.Save(records); err != nil {
		return models.Transaction{}, err
	}

	created := records[len(records)-1]
	e.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: created.Category},
		logging.Field{Key: "money_left", Value: created.MoneyLeft.Decimal.StringFixed(2)},
	).Info("Expense recorded")
	return created, nil
}

// AddIncome appends one income event. Income is stored as a negated expense
// so balance arithmetic stays uniform, and its category is fixed to the
// reserved Income label, bypassing the classifier. Unlike the expense path,
// a missing anchor is tolerated: the base balance defaults to zero.
func (e *Engine) AddIncome(tx models.Transaction, amount decimal.Decimal, startingBalance *decimal.Decimal) (models.Transaction, error) {
	records, err := e.store.Load()
	if err != nil {
		return models.Transaction{}, err
	}

	base, haveBase := e.baseBalance(records, startingBalance)
	if !haveBase {
		base = decimal.Zero
	}

	tx.Category = models.CategoryIncome
	tx.MoneySpent = amount.Neg()
	tx.MoneyLeft = decimal.NullDecimal{Decimal: base.Add(amount), Valid: true}
	if tx.PaymentMethod == "" {
		tx.PaymentMethod = e.paymentMethod
	}

	records = append(records, tx)
	if err := e.store.Save(records); err != nil {
		return models.Transaction{}, err
	}

	e.logger.WithFields(
		logging.Field{Key: "money_left", Value: tx.MoneyLeft.Decimal.StringFixed(2)},
	).Info("Income recorded")
	return tx, nil
}

// Import normalizes externally parsed raw rows, classifies the batch,
// appends it after the existing records and re-classifies the combined set
// (a no-op for rows that already carry a category). Returns the number of
// rows added. Malformed rows are coerced to defined defaults, never dropped.
func (e *Engine) Import(rows []models.RawRow) (int, error) {
	existing, err := e.store.Load()
	if err != nil {
		return 0, err
	}

	batch := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, row.Normalize(e.paymentMethod))
	}
	batch = e.classifier.ClassifyAll(batch)

	combined := append(existing, batch...)
	combined = e.classifier.ClassifyAll(combined)

	if err := e.store.Save(combined); err != nil {
		return 0, err
	}

	e.logger.WithField(logging.FieldCount, len(batch)).Info("Rows imported")
	return len(batch), nil
}

// Recategorize runs the classifier over the full store and persists the
// result unconditionally, even when nothing changed. Returns the number of
// records whose category was filled in. Running it twice in a row changes
// nothing on the second run.
func (e *Engine) Recategorize() (int, error) {
	records, err := e.store.Load()
	if err != nil {
		return 0, err
	}

	classified := e.classifier.ClassifyAll(records)

	changed := 0
	for i := range records {
		if records[i].Category != classified[i].Category {
			changed++
		}
	}

	if err := e.store.Save(classified); err != nil {
		return 0, err
	}

	e.logger.WithField(logging.FieldCount, changed).Info("Store re-categorized")
	return changed, nil
}

// Tail returns the last n records, optionally restricted to a calendar
// month, in append order. Returns ErrNoTransactions when the filtered ledger
// is empty.
func (e *Engine) Tail(n int, filter *models.MonthFilter) ([]models.Transaction, error) {
	records, err := e.store.Load()
	if err != nil {
		return nil, err
	}

	filtered := applyFilter(records, filter)
	if len(filtered) == 0 {
		return nil, ErrNoTransactions
	}

	if n <= 0 {
		n = DefaultTailCount
	}
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[len(filtered)-n:], nil
}

// DefaultTailCount is the number of records Tail shows when no count is
// given.
const DefaultTailCount = 20

// baseBalance resolves the anchor an expense subtracts from: the explicit
// starting balance when supplied, otherwise the running balance of the last
// record. A last record with an absent balance provides no anchor.
func (e *Engine) baseBalance(records []models.Transaction, startingBalance *decimal.Decimal) (decimal.Decimal, bool) {
	if startingBalance != nil {
		return *startingBalance, true
	}
	if len(records) > 0 {
		if last := records[len(records)-1]; last.MoneyLeft.Valid {
			return last.MoneyLeft.Decimal, true
		}
	}
	return decimal.Zero, false
}

// applyFilter keeps records matching the month filter, preserving append
// order. A nil filter keeps everything.
func applyFilter(records []models.Transaction, filter *models.MonthFilter) []models.Transaction {
	if filter == nil {
		return records
	}
	filtered := make([]models.Transaction, 0, len(records))
	for _, tx := range records {
		if filter.Matches(tx) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
