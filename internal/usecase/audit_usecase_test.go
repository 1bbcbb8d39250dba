package usecase

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaudit/internal/domain"
)

type fakeRowSource struct {
	rows [][]string
	err  error
}

func (f *fakeRowSource) Rows() ([][]string, error) { return f.rows, f.err }

func newTestAudit(source RowSource) *AuditUseCase {
	return NewAuditUseCase(
		source,
		NewSelectionUseCase("2023-04", "2023-04", nil),
		NewApportionUseCase(decimal.RequireFromString("0.47651"), nil),
		NewReconciliationUseCase(),
		zerolog.Nop(),
	)
}

func TestAuditRun(t *testing.T) {
	// statement order: most recent first
	source := &fakeRowSource{rows: [][]string{
		{"4/5/2023"},
		{"Check", "check #1041", "-$100.00", "$0.00"},
		{"4/1/2023"},
		{"Monthly Apartment Rent", "April Rent", "$100.00", "$100.00"},
	}}

	report, err := newTestAudit(source).Run()
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.ItemCount)
	assert.Equal(t, "2023-04-01", report.From.Format("2006-01-02"))
	assert.Equal(t, "2023-04-05", report.To.Format("2006-01-02"))
	assert.Equal(t, []string{"2023-04"}, report.Months)

	assert.Equal(t, "47.651", report.JOwed.String())
	assert.Equal(t, "52.349", report.AOwed.String())
	assert.True(t, report.JPaid.IsZero())
	assert.Equal(t, "100", report.APaid.String())

	// J owed 47.651 and paid nothing
	assert.Equal(t, "47.651", report.Settlement.String())
	assert.True(t, report.OpenedAndClosedAtZero,
		"period opened and closed at zero, the conditional check must run")
}

func TestAuditRunSourceError(t *testing.T) {
	source := &fakeRowSource{err: errors.New("statement missing")}
	_, err := newTestAudit(source).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement missing")
}

func TestAuditRunBalanceMismatchIsFatal(t *testing.T) {
	source := &fakeRowSource{rows: [][]string{
		{"4/5/2023"},
		{"Check", "check #1041", "-$100.00", "-$5.00"},
		{"4/1/2023"},
		{"Monthly Apartment Rent", "April Rent", "$100.00", "$100.00"},
	}}

	_, err := newTestAudit(source).Run()
	var mismatch *domain.BalanceMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "0", mismatch.Expected.String())
	assert.Equal(t, "-5", mismatch.Actual.String())
}

func TestAuditRunEmptyStatement(t *testing.T) {
	source := &fakeRowSource{rows: [][]string{{"4/1/2023"}}}
	_, err := newTestAudit(source).Run()
	require.True(t, errors.Is(err, domain.ErrEmptyLedger))
}
