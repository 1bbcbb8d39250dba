package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"rentaudit/internal/usecase"
)

// Workbook renders the report as an Excel workbook: one sheet each
// for charges and payments, plus a settlement summary.
func Workbook(r *usecase.Report) (*excelize.File, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "rentaudit",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, "Charges"); err != nil {
		return nil, err
	}
	if err := writeSharesSheet(xlsx, "Charges", r.Charges); err != nil {
		return nil, err
	}

	if _, err := xlsx.NewSheet("Payments"); err != nil {
		return nil, err
	}
	if err := writeSharesSheet(xlsx, "Payments", r.Payments); err != nil {
		return nil, err
	}

	if err := writeSummarySheet(xlsx, r); err != nil {
		return nil, err
	}

	return xlsx, nil
}

// WriteWorkbook writes the report workbook to path.
func WriteWorkbook(path string, r *usecase.Report) error {
	xlsx, err := Workbook(r)
	if err != nil {
		return err
	}
	return xlsx.SaveAs(path)
}

func writeSharesSheet(xlsx *excelize.File, sheet string, shares usecase.PartyShares) error {
	_ = xlsx.SetColWidth(sheet, "A", "A", 28)
	_ = xlsx.SetColWidth(sheet, "B", "D", 14)

	bold, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := xlsx.SetSheetRow(sheet, "A1", &[]any{"", "J", "A", "Total"}); err != nil {
		return err
	}
	_ = xlsx.SetCellStyle(sheet, "A1", "D1", bold)

	keys := make([]string, 0, len(shares.J))
	for key := range shares.J {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	row := 2
	for _, key := range keys {
		j := shares.J[key]
		a := shares.A[key]
		err := xlsx.SetSheetRow(sheet, fmt.Sprintf("A%d", row),
			&[]any{key, j.InexactFloat64(), a.InexactFloat64(), j.Add(a).InexactFloat64()})
		if err != nil {
			return err
		}
		row++
	}

	err = xlsx.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]any{
		"Total",
		shares.JTotal().InexactFloat64(),
		shares.ATotal().InexactFloat64(),
		shares.Total().InexactFloat64(),
	})
	if err != nil {
		return err
	}
	_ = xlsx.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), bold)
	return nil
}

func writeSummarySheet(xlsx *excelize.File, r *usecase.Report) error {
	const sheet = "Settlement"
	if _, err := xlsx.NewSheet(sheet); err != nil {
		return err
	}
	_ = xlsx.SetColWidth(sheet, "A", "A", 24)
	_ = xlsx.SetColWidth(sheet, "B", "B", 18)

	rows := [][]any{
		{"Run", r.RunID},
		{"Items", r.ItemCount},
		{"From", r.From.Format("2006-01-02")},
		{"To", r.To.Format("2006-01-02")},
		{"J owed", r.JOwed.InexactFloat64()},
		{"A owed", r.AOwed.InexactFloat64()},
		{"J paid", r.JPaid.InexactFloat64()},
		{"A paid", r.APaid.InexactFloat64()},
		{"J transfers A", r.Settlement.InexactFloat64()},
	}
	for i, cells := range rows {
		if err := xlsx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &cells); err != nil {
			return err
		}
	}
	return nil
}
