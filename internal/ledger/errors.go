package ledger

import "errors"

// ErrMissingBalanceAnchor is returned when an expense append cannot
// determine a base balance: the ledger is empty (or its last record has no
// running balance) and neither a starting nor an explicit resulting balance
// was supplied.
var ErrMissingBalanceAnchor = errors.New(
	"cannot determine base balance: supply a starting balance or an explicit resulting balance")

// ErrNoTransactions signals that the ledger is empty after filtering.
var ErrNoTransactions = errors.New("no transactions yet")
