// Package report renders audit results for humans.
package report

import (
	"fmt"
	"io"
	"sort"

	"rentaudit/internal/usecase"
)

// Console writes the settlement report as plain text.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Write renders the report.
func (c *Console) Write(r *usecase.Report) {
	fmt.Fprintf(c.w, "Audit run %s\n", r.RunID)
	fmt.Fprintf(c.w, "Parsed %d items from %s to %s.\n",
		r.ItemCount, r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	if len(r.Months) > 0 {
		fmt.Fprintf(c.w, "Calculating for months %s through %s.\n",
			r.Months[0], r.Months[len(r.Months)-1])
	}
	if r.OpenedAndClosedAtZero {
		fmt.Fprintln(c.w, "Period started and ended with a $0 balance.")
	}

	fmt.Fprintln(c.w, "\nCharges:")
	c.writeShares(r.Charges)
	fmt.Fprintf(c.w, "  J owed: %s\n", r.JOwed.StringFixed(2))
	fmt.Fprintf(c.w, "  A owed: %s\n", r.AOwed.StringFixed(2))
	fmt.Fprintf(c.w, "  total:  %s\n", r.Charges.Total().StringFixed(2))

	fmt.Fprintln(c.w, "\nPayments:")
	c.writeShares(r.Payments)
	fmt.Fprintf(c.w, "  J paid: %s\n", r.JPaid.StringFixed(2))
	fmt.Fprintf(c.w, "  A paid: %s\n", r.APaid.StringFixed(2))
	fmt.Fprintf(c.w, "  total:  %s\n", r.Payments.Total().StringFixed(2))

	fmt.Fprintf(c.w, "\nJ owed %s but paid %s\n", r.JOwed.Round(3), r.JPaid.Round(3))
	if r.Settlement.IsNegative() {
		fmt.Fprintf(c.w, "  so A should transfer J %s\n", r.Settlement.Neg())
	} else {
		fmt.Fprintf(c.w, "  so J should transfer A %s\n", r.Settlement)
	}
}

func (c *Console) writeShares(shares usecase.PartyShares) {
	keys := make([]string, 0, len(shares.J))
	for key := range shares.J {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(c.w, "  %-24s J %12s   A %12s\n",
			key, shares.J[key].StringFixed(2), shares.A[key].StringFixed(2))
	}
}
