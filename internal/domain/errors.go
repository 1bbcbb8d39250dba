package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptyLedger is returned when validation is asked to check a
// ledger with no line items.
var ErrEmptyLedger = errors.New("ledger contains no line items")

// MalformedRowError reports a statement row whose shape breaks the
// parsing assumptions. The source data is static, so this always
// needs a human to look at the offending row.
type MalformedRowError struct {
	Cells  []string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row (%s): %q", e.Reason, e.Cells)
}

// UnknownCategoryError reports an activity label outside the closed
// enumeration.
type UnknownCategoryError struct {
	Label string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown activity category %q", e.Label)
}

// NumericParseError reports currency text that could not be reduced
// to a decimal.
type NumericParseError struct {
	Text string
	Err  error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a currency amount", e.Text)
}

func (e *NumericParseError) Unwrap() error { return e.Err }

// MissingDateContextError reports a transaction row that appeared
// before any date marker row.
type MissingDateContextError struct {
	Cells []string
}

func (e *MissingDateContextError) Error() string {
	return fmt.Sprintf("transaction row %q precedes any date marker", e.Cells)
}

// BalanceMismatchError reports a running-balance violation. Date is
// the date of the item whose stated balance failed the check;
// everything after that point is untrustworthy.
type BalanceMismatchError struct {
	Date     time.Time
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *BalanceMismatchError) Error() string {
	return fmt.Sprintf("balance mismatch at %s: computed %s, statement says %s",
		e.Date.Format("2006-01-02"), e.Expected, e.Actual)
}

// ReconciliationError reports a disagreement between an apportioned
// total and the total recomputed directly from the line items.
type ReconciliationError struct {
	Check       string
	Apportioned decimal.Decimal
	Direct      decimal.Decimal
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s reconciliation failed: apportioned %s, direct %s",
		e.Check, e.Apportioned, e.Direct)
}
