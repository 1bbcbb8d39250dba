package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rentaudit/internal/usecase"
)

func testReport() *usecase.Report {
	dec := decimal.RequireFromString
	charges := usecase.PartyShares{
		J: map[string]decimal.Decimal{"2023-04_rent": dec("47.651")},
		A: map[string]decimal.Decimal{"2023-04_rent": dec("52.349")},
	}
	payments := usecase.PartyShares{
		J: map[string]decimal.Decimal{"2023-04_credit_card": dec("0"), "2023-04_check": dec("0")},
		A: map[string]decimal.Decimal{"2023-04_credit_card": dec("0"), "2023-04_check": dec("100")},
	}
	return &usecase.Report{
		RunID:      "01HTESTRUN",
		ItemCount:  2,
		From:       time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
		Months:     []string{"2023-04"},
		Charges:    charges,
		Payments:   payments,
		JOwed:      dec("47.651"),
		AOwed:      dec("52.349"),
		JPaid:      dec("0"),
		APaid:      dec("100"),
		Settlement: dec("47.651"),
	}
}

func TestConsoleWrite(t *testing.T) {
	var buf strings.Builder
	NewConsole(&buf).Write(testReport())
	out := buf.String()

	assert.Contains(t, out, "Parsed 2 items from 2023-04-01 to 2023-04-05.")
	assert.Contains(t, out, "2023-04_rent")
	assert.Contains(t, out, "J owed: 47.65")
	assert.Contains(t, out, "A paid: 100.00")
	assert.Contains(t, out, "so J should transfer A 47.651")
}

func TestConsoleWriteNegativeSettlement(t *testing.T) {
	r := testReport()
	r.Settlement = decimal.RequireFromString("-12.5")

	var buf strings.Builder
	NewConsole(&buf).Write(r)

	assert.Contains(t, buf.String(), "so A should transfer J 12.5")
}
