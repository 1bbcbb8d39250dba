package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func item(date time.Time, activity Activity, amount, balance string) LineItem {
	return LineItem{
		Date:        date,
		Activity:    activity,
		Description: string(activity),
		Amount:      decimal.RequireFromString(amount),
		Balance:     decimal.RequireFromString(balance),
	}
}

func TestBuildLedger(t *testing.T) {
	// statement order: most recent first
	rows := [][]string{
		{"3/22/2023"},
		{"Monthly Parking Discount", "March Credit", "-$30.65", "-$736.75"},
		{"3/1/2023"},
		{"RUBS Water", "WATER", "$45.87", "-$706.10"},
		{"Monthly Apartment Rent", "March Rent", "$1,500.00", "-$752.97"},
	}

	ledger, err := BuildLedger(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ledger.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(ledger.Items))
	}
	// output must ascend by date: both 3/1 items before the 3/22 one,
	// preserving reverse document order within a day
	if !ledger.Items[0].Date.Equal(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first item date = %s", ledger.Items[0].Date)
	}
	if ledger.Items[0].Activity != Rent {
		t.Errorf("first item = %q, want rent", ledger.Items[0].Activity)
	}
	if ledger.Items[2].Activity != ParkingConcession {
		t.Errorf("last item = %q, want parking concession", ledger.Items[2].Activity)
	}

	if !ledger.Latest.Equal(time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("latest marker = %s", ledger.Latest)
	}
	if !ledger.Earliest.Equal(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("earliest marker = %s", ledger.Earliest)
	}
}

func TestBuildLedgerErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want any
	}{
		{
			name: "transaction before any date marker",
			rows: [][]string{
				{"RUBS Water", "WATER", "$45.87", "-$706.10"},
			},
			want: new(*MissingDateContextError),
		},
		{
			name: "unparseable date marker",
			rows: [][]string{
				{"March 1st"},
			},
			want: new(*MalformedRowError),
		},
		{
			name: "row with unexpected shape",
			rows: [][]string{
				{"3/1/2023"},
				{"RUBS Water", "WATER"},
			},
			want: new(*MalformedRowError),
		},
		{
			name: "unknown category bubbles up",
			rows: [][]string{
				{"3/1/2023"},
				{"Late Fee", "LATE", "$10.00", "$10.00"},
			},
			want: new(*UnknownCategoryError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLedger(tt.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.As(err, tt.want) {
				t.Errorf("error %v has wrong type, want %T", err, tt.want)
			}
		})
	}
}

func TestValidateBalances(t *testing.T) {
	mar1 := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	mar22 := time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC)

	t.Run("consistent sequence", func(t *testing.T) {
		items := []LineItem{
			item(mar1, RubsWater, "45.87", "-736.75"),
			item(mar22, ParkingConcession, "-30.65", "-767.40"),
		}
		got, err := ValidateBalances(items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(items) {
			t.Errorf("validation must return the sequence unchanged")
		}
	})

	t.Run("mismatch fails with both values", func(t *testing.T) {
		items := []LineItem{
			item(mar1, RubsWater, "45.87", "-736.75"),
			item(mar22, ParkingConcession, "-30.65", "-767.41"),
		}
		_, err := ValidateBalances(items)
		var mismatch *BalanceMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected BalanceMismatchError, got %v", err)
		}
		if mismatch.Expected.String() != "-767.4" {
			t.Errorf("expected value = %s, want -767.4", mismatch.Expected)
		}
		if mismatch.Actual.String() != "-767.41" {
			t.Errorf("actual value = %s, want -767.41", mismatch.Actual)
		}
		if !mismatch.Date.Equal(mar22) {
			t.Errorf("mismatch date = %s, want %s", mismatch.Date, mar22)
		}
	})

	t.Run("rounding to cents", func(t *testing.T) {
		// raw sum is -767.401 which rounds to the stated balance
		items := []LineItem{
			item(mar1, RubsWater, "45.87", "-736.751"),
			item(mar22, ParkingConcession, "-30.65", "-767.40"),
		}
		if _, err := ValidateBalances(items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		_, err := ValidateBalances(nil)
		if !errors.Is(err, ErrEmptyLedger) {
			t.Fatalf("expected ErrEmptyLedger, got %v", err)
		}
	})

	t.Run("single item is trivially valid", func(t *testing.T) {
		items := []LineItem{item(mar1, Rent, "1500", "1500")}
		if _, err := ValidateBalances(items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
