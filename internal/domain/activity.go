package domain

// Activity is the closed set of line item kinds that appear on the
// statement. The string value is the exact label used in the
// statement's activity column.
type Activity string

const (
	// Check is A's form of payment.
	Check Activity = "Check"
	// CreditCard is J's form of payment.
	CreditCard        Activity = "Credit Card Payment"
	Rent              Activity = "Monthly Apartment Rent"
	Parking           Activity = "Monthly Reserved Parking"
	ParkingConcession Activity = "Monthly Parking Discount"
	RubsBillingFee    Activity = "RUBS Billing Fee"
	RubsGas           Activity = "RUBS Gas/Central Boiler"
	RubsPest          Activity = "RUBS Pest"
	RubsSewer         Activity = "RUBS Sewer"
	RubsTrash         Activity = "RUBS Trash"
	RubsWater         Activity = "RUBS Water"
	// Misc covers one-off charges such as package storage.
	Misc Activity = "Other Miscel. Income"
)

// Group membership. Every activity is either a payment or a charge,
// and every charge is split either proportionally (rent) or equally.
// Parking and its concession credit take the parking split path, the
// remaining equal-split charges the utilities path.
var (
	PaymentTypes = []Activity{Check, CreditCard}

	OwedTypes = []Activity{
		Rent, Parking, ParkingConcession, RubsBillingFee, RubsGas,
		RubsPest, RubsSewer, RubsTrash, RubsWater, Misc,
	}

	ProportionalSplitTypes = []Activity{Rent}

	ParkingSplitTypes = []Activity{Parking, ParkingConcession}

	UtilitySplitTypes = []Activity{
		RubsBillingFee, RubsGas, RubsPest, RubsSewer, RubsTrash,
		RubsWater, Misc,
	}
)

var activityByLabel = func() map[string]Activity {
	m := make(map[string]Activity, len(PaymentTypes)+len(OwedTypes))
	for _, a := range PaymentTypes {
		m[string(a)] = a
	}
	for _, a := range OwedTypes {
		m[string(a)] = a
	}
	return m
}()

// ParseActivity matches a statement label against the closed set.
func ParseActivity(label string) (Activity, error) {
	activity, ok := activityByLabel[label]
	if !ok {
		return "", &UnknownCategoryError{Label: label}
	}
	return activity, nil
}

var paymentSet = toSet(PaymentTypes)

// IsPayment reports whether the activity records money received
// rather than money owed.
func (a Activity) IsPayment() bool {
	return paymentSet[a]
}

func toSet(types []Activity) map[Activity]bool {
	set := make(map[Activity]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
