// Package sheets implements the spreadsheet data-sync layer: the cell
// model at the API boundary, header resolution by fuzzy label matching,
// typed row mapping, A1 addressing, and the error taxonomy shared by the
// concrete backends.
package sheets

import "context"

// Ports for outbound adapters.
type (
	// GridReader fetches a rectangular range as raw cells. Row 0 of the
	// grid is conventionally the header row. Trailing empty rows and
	// columns may be omitted by the source.
	GridReader interface {
		ReadRange(ctx context.Context, rangeA1 string) ([][]Cell, error)
	}

	// CellWriter overwrites a single cell of a tab. The value is submitted
	// as a literal; the receiving side applies its own format inference,
	// mirroring manual entry.
	CellWriter interface {
		WriteCell(ctx context.Context, tab, a1 string, value any) error
	}

	// Grid combines read and write access to one spreadsheet.
	Grid interface {
		GridReader
		CellWriter
	}
)
