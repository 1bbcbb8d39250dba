package usecase

// RowSource supplies the raw statement table: one entry per row, one
// string per cell, in original document order (most recent first).
type RowSource interface {
	Rows() ([][]string, error)
}
