package usecase

import (
	"github.com/shopspring/decimal"

	"rentaudit/internal/domain"
)

// reconcileTolerance bounds the disagreement allowed between an
// apportioned total and the total recomputed from raw items.
var reconcileTolerance = decimal.RequireFromString("0.0001")

// ReconciliationUseCase cross-checks apportioned totals against
// totals derived directly from the selected line items. These catch
// arithmetic or bucketing mistakes; any failure means the whole run
// is untrustworthy.
type ReconciliationUseCase struct{}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase() *ReconciliationUseCase {
	return &ReconciliationUseCase{}
}

// CheckOwed verifies that the two charge maps together sum to the
// owed-type total over the selected months.
func (uc *ReconciliationUseCase) CheckOwed(charges PartyShares, buckets []MonthBucket) error {
	apportioned := charges.Total()
	direct := amountForTypes(allItems(buckets), domain.OwedTypes)
	if !withinTolerance(apportioned, direct) {
		return &domain.ReconciliationError{
			Check:       "owed",
			Apportioned: apportioned,
			Direct:      direct,
		}
	}
	return nil
}

// CheckPaid verifies the payment maps against the payment-type total.
// Payments are negative in the statement, so absolute values are
// compared.
func (uc *ReconciliationUseCase) CheckPaid(payments PartyShares, buckets []MonthBucket) error {
	apportioned := payments.Total()
	direct := amountForTypes(allItems(buckets), domain.PaymentTypes)
	if !withinTolerance(apportioned.Abs(), direct.Abs()) {
		return &domain.ReconciliationError{
			Check:       "paid",
			Apportioned: apportioned,
			Direct:      direct,
		}
	}
	return nil
}

// CheckZeroBalancePeriod applies only when the period demonstrably
// opened and closed at a zero balance: the first selected item's
// amount equals its balance and the last selected item's balance is
// zero. In that case everything owed must have been paid. The
// opening-balance detection is a heuristic, so a non-zero-opening
// dataset simply skips the check; the bool reports whether it ran.
func (uc *ReconciliationUseCase) CheckZeroBalancePeriod(buckets []MonthBucket, owed, paid decimal.Decimal) (bool, error) {
	if len(buckets) == 0 {
		return false, nil
	}
	first := buckets[0].Items
	last := buckets[len(buckets)-1].Items
	if len(first) == 0 || len(last) == 0 {
		return false, nil
	}
	if !first[0].Amount.Equal(first[0].Balance) {
		return false, nil
	}
	if !last[len(last)-1].Balance.IsZero() {
		return false, nil
	}

	if !withinTolerance(paid.Abs(), owed.Abs()) {
		return true, &domain.ReconciliationError{
			Check:       "zero-balance period",
			Apportioned: paid,
			Direct:      owed,
		}
	}
	return true, nil
}

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(reconcileTolerance)
}

func allItems(buckets []MonthBucket) []domain.LineItem {
	var items []domain.LineItem
	for _, bucket := range buckets {
		items = append(items, bucket.Items...)
	}
	return items
}
