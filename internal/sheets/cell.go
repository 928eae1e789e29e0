package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind tags the raw value variants a spreadsheet cell can carry.
type CellKind int

const (
	Empty CellKind = iota
	Text
	Number
)

// Cell is one raw cell at the API boundary. The values endpoint returns
// untyped JSON (string, float64, bool, or absent); converting here keeps
// the untyped form from leaking past this package.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// TextCell returns a text-valued cell.
func TextCell(s string) Cell { return Cell{Kind: Text, Text: s} }

// NumberCell returns a number-valued cell.
func NumberCell(n float64) Cell { return Cell{Kind: Number, Num: n} }

// CellFromRaw converts one raw API value into a Cell. Booleans and any
// other exotic type are stringified; UNFORMATTED_VALUE reads deliver
// numbers as float64.
func CellFromRaw(v any) Cell {
	switch t := v.(type) {
	case nil:
		return Cell{}
	case string:
		if t == "" {
			return Cell{}
		}
		return Cell{Kind: Text, Text: t}
	case float64:
		return Cell{Kind: Number, Num: t}
	case int:
		return Cell{Kind: Number, Num: float64(t)}
	case int64:
		return Cell{Kind: Number, Num: float64(t)}
	default:
		return Cell{Kind: Text, Text: fmt.Sprint(t)}
	}
}

// GridFromRaw converts the 2D value grid of a range read.
func GridFromRaw(values [][]any) [][]Cell {
	grid := make([][]Cell, len(values))
	for i, row := range values {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = CellFromRaw(v)
		}
		grid[i] = cells
	}
	return grid
}

// IsEmpty reports whether the cell holds no value. A whitespace-only
// text cell counts as empty.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty || (c.Kind == Text && strings.TrimSpace(c.Text) == "")
}

// String renders the cell for display and header matching. Numbers use
// the shortest representation that round-trips.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}
