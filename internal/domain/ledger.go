package domain

import (
	"slices"
	"time"
)

// Statement date markers look like "3/22/2023".
const dateMarkerLayout = "1/2/2006"

// Ledger is the reconstructed line item sequence for a statement
// period, ascending by date, plus the span of marker dates seen while
// building it.
type Ledger struct {
	Items []LineItem

	// Earliest and Latest are the first and last marker dates in the
	// statement, kept for reporting. They can extend past the items
	// when a marker has no transactions under it.
	Earliest time.Time
	Latest   time.Time
}

// BuildLedger folds raw statement rows into a date-ascending line
// item sequence. The statement lists rows most recent first; a date
// marker row sets the date for every transaction row after it until
// the next marker. A transaction row before any marker is fatal.
func BuildLedger(rows [][]string) (*Ledger, error) {
	ledger := &Ledger{}
	var current time.Time
	haveDate := false

	for _, cells := range rows {
		row, err := ClassifyRow(cells)
		if err != nil {
			return nil, err
		}
		switch r := row.(type) {
		case DateMarker:
			date, err := time.Parse(dateMarkerLayout, r.Text)
			if err != nil {
				return nil, &MalformedRowError{Cells: cells, Reason: "unparseable date marker"}
			}
			if !haveDate {
				// first marker in document order is the most recent
				ledger.Latest = date
			}
			current = date
			haveDate = true
		case Transaction:
			if !haveDate {
				return nil, &MissingDateContextError{Cells: r.Cells}
			}
			item, err := LineItemFromRow(r.Cells, current)
			if err != nil {
				return nil, err
			}
			ledger.Items = append(ledger.Items, item)
		}
	}

	if haveDate {
		ledger.Earliest = current
	}
	// input was descending by date
	slices.Reverse(ledger.Items)
	return ledger, nil
}

// ValidateBalances checks that every item's stated balance equals the
// previous item's balance plus the item's amount, rounded to cents.
// The first mismatch is fatal: the ledger cannot be trusted past that
// point. The sequence is returned unchanged on success.
func ValidateBalances(items []LineItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyLedger
	}
	current := items[0]
	for _, next := range items[1:] {
		expected := current.Balance.Add(next.Amount).Round(2)
		if !expected.Equal(next.Balance) {
			return nil, &BalanceMismatchError{
				Date:     next.Date,
				Expected: expected,
				Actual:   next.Balance,
			}
		}
		current = next
	}
	return items, nil
}
