package usecase

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"rentaudit/internal/domain"
)

// Report is the full outcome of one audit run.
type Report struct {
	RunID     string
	ItemCount int
	From, To  time.Time
	Months    []string

	Charges  PartyShares
	Payments PartyShares

	JOwed, AOwed decimal.Decimal
	JPaid, APaid decimal.Decimal

	// Settlement is J's owed minus paid, rounded to three places. A
	// positive value is what J transfers to A to equalize.
	Settlement decimal.Decimal

	// OpenedAndClosedAtZero reports whether the paid-equals-owed
	// check ran (see ReconciliationUseCase.CheckZeroBalancePeriod).
	OpenedAndClosedAtZero bool
}

// AuditUseCase runs the whole pipeline: load rows, rebuild the
// ledger, validate balances, select months, apportion, reconcile.
type AuditUseCase struct {
	source    RowSource
	selection *SelectionUseCase
	apportion *ApportionUseCase
	reconcile *ReconciliationUseCase
	log       zerolog.Logger
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(
	source RowSource,
	selection *SelectionUseCase,
	apportion *ApportionUseCase,
	reconcile *ReconciliationUseCase,
	log zerolog.Logger,
) *AuditUseCase {
	return &AuditUseCase{
		source:    source,
		selection: selection,
		apportion: apportion,
		reconcile: reconcile,
		log:       log,
	}
}

// Run executes one audit. Any failure is fatal: the value of the run
// is an all-or-nothing check of the dataset, and a partially trusted
// ledger is worse than a loud failure.
func (uc *AuditUseCase) Run() (*Report, error) {
	runID := ulid.Make().String()
	log := uc.log.With().Str("run_id", runID).Logger()

	rows, err := uc.source.Rows()
	if err != nil {
		return nil, fmt.Errorf("read statement rows: %w", err)
	}
	log.Info().Int("rows", len(rows)).Msg("statement rows loaded")

	ledger, err := domain.BuildLedger(rows)
	if err != nil {
		return nil, err
	}
	items, err := domain.ValidateBalances(ledger.Items)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("items", len(items)).
		Str("from", ledger.Earliest.Format("2006-01-02")).
		Str("to", ledger.Latest.Format("2006-01-02")).
		Msg("ledger reconstructed and validated")

	buckets := uc.selection.SelectMonths(items)
	months := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, bucket.Key)
	}
	log.Info().Strs("months", months).Msg("months selected")

	charges := uc.apportion.Charges(buckets)
	payments := uc.apportion.Payments(buckets)

	if err := uc.reconcile.CheckOwed(charges, buckets); err != nil {
		return nil, err
	}
	if err := uc.reconcile.CheckPaid(payments, buckets); err != nil {
		return nil, err
	}

	owed := charges.Total()
	paid := payments.Total()
	zeroPeriod, err := uc.reconcile.CheckZeroBalancePeriod(buckets, owed, paid)
	if err != nil {
		return nil, err
	}
	if zeroPeriod {
		log.Info().Msg("period opened and closed at zero balance; paid matches owed")
	}

	jOwed := charges.JTotal()
	jPaid := payments.JTotal()

	return &Report{
		RunID:                 runID,
		ItemCount:             len(items),
		From:                  ledger.Earliest,
		To:                    ledger.Latest,
		Months:                months,
		Charges:               charges,
		Payments:              payments,
		JOwed:                 jOwed,
		AOwed:                 charges.ATotal(),
		JPaid:                 jPaid,
		APaid:                 payments.ATotal(),
		Settlement:            jOwed.Sub(jPaid).Round(3),
		OpenedAndClosedAtZero: zeroPeriod,
	}, nil
}
