// Package memory is an in-process grid backend for local development
// and tests. It mimics the remote API closely enough that the service
// layer cannot tell the difference: header row first, unformatted
// values, single-cell writes.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"eclor/internal/core"
	"eclor/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	tabs map[string][][]sheets.Cell
}

func New() *Store {
	return &Store{tabs: make(map[string][][]sheets.Cell)}
}

// NewSeeded returns a store whose expense tab holds a small realistic
// dataset: classified rows, an unclassified row, and a row with a
// malformed amount.
func NewSeeded() *Store {
	s := New()
	header := make([]sheets.Cell, len(sheets.ExpensesSchema))
	for i, f := range sheets.ExpensesSchema {
		header[i] = sheets.TextCell(f.Label)
	}
	rows := [][]sheets.Cell{
		header,
		seedRow("Parking aéroport CDG", sheets.NumberCell(24), 45356, "🅿️ Parking", "📌 Type", "dep-001"),
		seedRow("Adobe Creative Cloud", sheets.NumberCell(59.99), 45357, "⚙️ Software", "🔁 Abonnement", "dep-002"),
		seedRow("Repas client", sheets.TextCell("45,20"), 45360, "", "", "dep-003"),
		seedRow("Filtre ND", sheets.TextCell("n/a"), 45361, "📦 Autre", "📌 Type", "dep-004"),
	}
	s.SetTab(sheets.ExpensesTab, rows)
	return s
}

func seedRow(label string, amount sheets.Cell, serial float64, category, typ, id string) []sheets.Cell {
	cells := make([]sheets.Cell, len(sheets.ExpensesSchema))
	for i, f := range sheets.ExpensesSchema {
		switch f.Key {
		case sheets.FieldLabel:
			cells[i] = sheets.TextCell(label)
		case sheets.FieldAmountTTC:
			cells[i] = amount
		case sheets.FieldPaymentDate:
			cells[i] = sheets.NumberCell(serial)
		case sheets.FieldCategory:
			cells[i] = sheets.TextCell(category)
		case sheets.FieldType:
			cells[i] = sheets.TextCell(typ)
		case sheets.FieldID:
			cells[i] = sheets.TextCell(id)
		}
	}
	return cells
}

// SetTab replaces a tab's contents wholesale.
func (s *Store) SetTab(tab string, rows [][]sheets.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]sheets.Cell, len(rows))
	for i, r := range rows {
		copied[i] = append([]sheets.Cell(nil), r...)
	}
	s.tabs[tab] = copied
}

// ReadRange returns the whole tab named in the range. Column spans are
// not enforced; like the remote API, trailing blanks may simply be
// absent.
func (s *Store) ReadRange(_ context.Context, rangeA1 string) ([][]sheets.Cell, error) {
	tab, _, err := splitRange(rangeA1)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tabs[tab]
	if !ok {
		return nil, &sheets.RemoteError{Op: "read", Range: rangeA1, Status: 400, Body: "unknown tab"}
	}
	out := make([][]sheets.Cell, len(rows))
	for i, r := range rows {
		out[i] = append([]sheets.Cell(nil), r...)
	}
	return out, nil
}

// WriteCell sets one cell, growing the grid if the reference lands
// outside the current bounds.
func (s *Store) WriteCell(_ context.Context, tab, a1 string, value any) error {
	col, row, err := parseCellRef(a1)
	if err != nil {
		return &sheets.RemoteError{Op: "write", Range: fmt.Sprintf("'%s'!%s", tab, a1), Status: 400, Body: err.Error()}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tabs[tab]
	if !ok {
		return &sheets.RemoteError{Op: "write", Range: fmt.Sprintf("'%s'!%s", tab, a1), Status: 400, Body: "unknown tab"}
	}
	for len(rows) <= row {
		rows = append(rows, nil)
	}
	for len(rows[row]) <= col {
		rows[row] = append(rows[row], sheets.Cell{})
	}
	rows[row][col] = sheets.CellFromRaw(value)
	s.tabs[tab] = rows
	return nil
}

// Expenses maps the seeded tab through the shared header and row
// machinery, as the service layer would.
func (s *Store) Expenses(ctx context.Context) ([]core.Expense, error) {
	grid, err := s.ReadRange(ctx, sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan))
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, nil
	}
	ix := sheets.ResolveHeader(grid[0], sheets.ExpensesSchema)
	rows, _ := sheets.MapExpenses(grid[1:], ix)
	return rows, nil
}

func splitRange(rangeA1 string) (tab, span string, err error) {
	i := strings.LastIndex(rangeA1, "!")
	if i < 0 {
		return "", "", fmt.Errorf("range %q has no tab", rangeA1)
	}
	tab = strings.Trim(rangeA1[:i], "'")
	return tab, rangeA1[i+1:], nil
}

// parseCellRef turns "E6" into zero-based column and row indices.
func parseCellRef(a1 string) (col, row int, err error) {
	i := 0
	for i < len(a1) && a1[i] >= 'A' && a1[i] <= 'Z' {
		col = col*26 + int(a1[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(a1) {
		return 0, 0, fmt.Errorf("malformed cell reference %q", a1)
	}
	for _, c := range a1[i:] {
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("malformed cell reference %q", a1)
		}
		row = row*10 + int(c-'0')
	}
	if row == 0 {
		return 0, 0, fmt.Errorf("malformed cell reference %q", a1)
	}
	return col - 1, row - 1, nil
}
