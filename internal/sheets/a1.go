package sheets

import "fmt"

// ColumnLetter converts a zero-based column index to its spreadsheet
// letter form: 0 -> A, 25 -> Z, 26 -> AA.
func ColumnLetter(idx int) string {
	n := idx + 1
	var s []byte
	for n > 0 {
		m := (n - 1) % 26
		s = append([]byte{byte('A' + m)}, s...)
		n = (n - 1) / 26
	}
	return string(s)
}

// CellRef builds the A1 reference of a single data cell from a zero-based
// column index and a zero-based data row index. Data rows sit below the
// header row, so data row 0 lives at sheet row 2.
func CellRef(colIdx, dataRowIdx int) string {
	return fmt.Sprintf("%s%d", ColumnLetter(colIdx), dataRowIdx+2)
}

// TabRange builds a whole-column A1 range for a tab, quoting the tab name
// so decorated names ("💰Dépenses") address correctly.
func TabRange(tab, colSpan string) string {
	return fmt.Sprintf("'%s'!%s", tab, colSpan)
}
