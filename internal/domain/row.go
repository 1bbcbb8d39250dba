package domain

import "fmt"

// Statement row shapes, by cell count.
const (
	dateMarkerCells  = 1
	transactionCells = 4
)

// Row is a classified statement row.
type Row interface {
	isRow()
}

// DateMarker is a single-cell row carrying the date that applies to
// the transaction rows after it, e.g. "3/1/2023".
type DateMarker struct {
	Text string
}

// Transaction is a four-cell row: activity label, description, amount
// text, balance text.
type Transaction struct {
	Cells []string
}

func (DateMarker) isRow()  {}
func (Transaction) isRow() {}

// ClassifyRow classifies raw cells by shape. Any other cell count
// means the statement no longer looks the way the parser assumes.
func ClassifyRow(cells []string) (Row, error) {
	switch len(cells) {
	case dateMarkerCells:
		return DateMarker{Text: cells[0]}, nil
	case transactionCells:
		return Transaction{Cells: cells}, nil
	default:
		return nil, &MalformedRowError{
			Cells:  cells,
			Reason: fmt.Sprintf("expected 1 or 4 cells, got %d", len(cells)),
		}
	}
}
