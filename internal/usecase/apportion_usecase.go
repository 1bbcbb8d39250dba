package usecase

import (
	"github.com/shopspring/decimal"

	"rentaudit/internal/domain"
)

// Split group suffixes used in per-month apportionment keys.
const (
	GroupRent       = "rent"
	GroupParking    = "parking"
	GroupUtility    = "util_charge"
	GroupCheck      = "check"
	GroupCreditCard = "credit_card"
)

var (
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
)

// PartyShares maps "{month}_{group}" keys to each party's amount.
// Every key is present in both maps, and each J/A pair sums exactly
// to the group's total for that month.
type PartyShares struct {
	J map[string]decimal.Decimal
	A map[string]decimal.Decimal
}

func newPartyShares() PartyShares {
	return PartyShares{
		J: make(map[string]decimal.Decimal),
		A: make(map[string]decimal.Decimal),
	}
}

func (s PartyShares) set(month, group string, j, a decimal.Decimal) {
	key := month + "_" + group
	s.J[key] = j
	s.A[key] = a
}

// JTotal sums J's entries.
func (s PartyShares) JTotal() decimal.Decimal { return sumValues(s.J) }

// ATotal sums A's entries.
func (s PartyShares) ATotal() decimal.Decimal { return sumValues(s.A) }

// Total sums both parties' entries.
func (s PartyShares) Total() decimal.Decimal { return s.JTotal().Add(s.ATotal()) }

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

// ApportionUseCase splits each month's charges between the two
// parties: rent in proportion to the configured ratio, parking
// half-and-half, utilities half-and-half except in guest months where
// J pays a third and A covers the rest. A's share is always the
// remainder of the total, so the pair sums exactly.
type ApportionUseCase struct {
	ratio       decimal.Decimal
	guestMonths map[string]bool
}

// NewApportionUseCase creates a new ApportionUseCase. Ratio is J's
// fraction of proportional-split charges; guestMonths lists the
// year-month keys where A had an extra occupant.
func NewApportionUseCase(ratio decimal.Decimal, guestMonths []string) *ApportionUseCase {
	guests := make(map[string]bool, len(guestMonths))
	for _, month := range guestMonths {
		guests[month] = true
	}
	return &ApportionUseCase{ratio: ratio, guestMonths: guests}
}

// Charges apportions owed-type amounts for every selected month. A
// group with no matching items still gets a zero entry so the totals
// stay auditable.
func (uc *ApportionUseCase) Charges(buckets []MonthBucket) PartyShares {
	charges := newPartyShares()
	for _, bucket := range buckets {
		rent := amountForTypes(bucket.Items, domain.ProportionalSplitTypes)
		jRent := rent.Mul(uc.ratio)
		charges.set(bucket.Key, GroupRent, jRent, rent.Sub(jRent))

		parking := amountForTypes(bucket.Items, domain.ParkingSplitTypes)
		jParking := parking.Div(two)
		charges.set(bucket.Key, GroupParking, jParking, parking.Sub(jParking))

		util := amountForTypes(bucket.Items, domain.UtilitySplitTypes)
		divisor := two
		if uc.guestMonths[bucket.Key] {
			divisor = three
		}
		jUtil := util.Div(divisor)
		charges.set(bucket.Key, GroupUtility, jUtil, util.Sub(jUtil))
	}
	return charges
}

// Payments collects what each party actually paid, by instrument: J
// pays by credit card, A by check. Payment amounts are negative in
// the statement's balance convention, so absolute values are kept.
func (uc *ApportionUseCase) Payments(buckets []MonthBucket) PartyShares {
	payments := newPartyShares()
	for _, bucket := range buckets {
		credit := amountForTypes(bucket.Items, []domain.Activity{domain.CreditCard}).Abs()
		payments.set(bucket.Key, GroupCreditCard, credit, decimal.Zero)

		check := amountForTypes(bucket.Items, []domain.Activity{domain.Check}).Abs()
		payments.set(bucket.Key, GroupCheck, decimal.Zero, check)
	}
	return payments
}

// amountForTypes sums the amounts of items whose activity is in types.
func amountForTypes(items []domain.LineItem, types []domain.Activity) decimal.Decimal {
	want := make(map[domain.Activity]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	total := decimal.Zero
	for _, item := range items {
		if want[item.Activity] {
			total = total.Add(item.Amount)
		}
	}
	return total
}
