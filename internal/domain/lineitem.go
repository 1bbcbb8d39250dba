package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one parsed transaction from the statement. Balance is
// the statement's running balance after the item is applied. Items
// are never mutated once built.
type LineItem struct {
	Date        time.Time
	Activity    Activity
	Description string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
}

// LineItemFromRow builds a LineItem from a four-cell transaction row
// using the date currently in effect.
func LineItemFromRow(cells []string, date time.Time) (LineItem, error) {
	if len(cells) != transactionCells {
		return LineItem{}, &MalformedRowError{
			Cells:  cells,
			Reason: fmt.Sprintf("transaction row needs %d cells", transactionCells),
		}
	}

	activity, err := ParseActivity(cells[0])
	if err != nil {
		return LineItem{}, err
	}
	if cells[1] == "" {
		return LineItem{}, &MalformedRowError{Cells: cells, Reason: "empty description"}
	}
	amount, err := ParseCurrency(cells[2])
	if err != nil {
		return LineItem{}, err
	}
	balance, err := ParseCurrency(cells[3])
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		Date:        date,
		Activity:    activity,
		Description: cells[1],
		Amount:      amount,
		Balance:     balance,
	}, nil
}

// ParseCurrency strips currency formatting ("$1,234.56", "-$30.65")
// down to digits, the decimal point and the minus sign, and parses
// the remainder as a decimal.
func ParseCurrency(text string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, &NumericParseError{Text: text}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &NumericParseError{Text: text, Err: err}
	}
	return d, nil
}

// MonthKey returns the year-month bucket key for the item, e.g.
// "2023-03".
func (li LineItem) MonthKey() string {
	return li.Date.Format("2006-01")
}

// AsRow renders the item as a CSV line.
func (li LineItem) AsRow() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s",
		li.Date.Format("2006-01-02"), li.Amount, li.Balance, li.Activity, li.Description)
}
