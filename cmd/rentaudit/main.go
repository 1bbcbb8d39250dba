package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rentaudit/internal/adapter/report"
	"rentaudit/internal/infrastructure/config"
	"rentaudit/internal/infrastructure/htmltable"
	"rentaudit/internal/infrastructure/logger"
	"rentaudit/internal/usecase"
)

var (
	statementPath string
	exportPath    string
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "rentaudit",
		Short:        "Rent statement audit and settlement tool",
		Long:         `Rebuilds the rent statement ledger, verifies running balances, and splits charges and payments between the two cost-sharing parties.`,
		SilenceUsage: true,
	}

	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the statement and compute the settlement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit()
		},
	}
	auditCmd.Flags().StringVar(&statementPath, "statement", "", "Path to the statement HTML dump (overrides STATEMENT_PATH)")
	auditCmd.Flags().StringVar(&exportPath, "export", "", "Also write the report as an Excel workbook to this path")
	rootCmd.AddCommand(auditCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAudit() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if statementPath != "" {
		cfg.StatementPath = statementPath
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	exclusions, err := parseExclusions(cfg.ExcludedDates)
	if err != nil {
		return err
	}

	audit := usecase.NewAuditUseCase(
		htmltable.NewSource(cfg.StatementPath),
		usecase.NewSelectionUseCase(cfg.StartMonth, cfg.EndMonth, exclusions),
		usecase.NewApportionUseCase(cfg.JRatio, cfg.GuestMonths),
		usecase.NewReconciliationUseCase(),
		log,
	)

	rep, err := audit.Run()
	if err != nil {
		log.Error().Err(err).Msg("audit failed")
		return err
	}

	report.NewConsole(os.Stdout).Write(rep)

	if exportPath != "" {
		if err := report.WriteWorkbook(exportPath, rep); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.Info().Str("path", exportPath).Msg("workbook written")
	}
	return nil
}

// parseExclusions parses "month:date" pairs such as
// "2023-04:2023-04-29".
func parseExclusions(pairs []string) ([]usecase.Exclusion, error) {
	exclusions := make([]usecase.Exclusion, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		month, rawDate, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("malformed exclusion %q, want month:date", pair)
		}
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return nil, fmt.Errorf("malformed exclusion date %q: %w", rawDate, err)
		}
		exclusions = append(exclusions, usecase.Exclusion{Month: month, Date: date})
	}
	return exclusions, nil
}
