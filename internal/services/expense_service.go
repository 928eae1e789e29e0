// Package services orchestrates spreadsheet reads and writes behind the
// HTTP layer: row listing, classification views, and the guarded
// single-cell edit path.
package services

import (
	"context"
	"fmt"

	"eclor/internal/core"
	applog "eclor/internal/log"
	"eclor/internal/sheets"
)

// EditPublisher announces successful cell edits to interested consumers.
type EditPublisher interface {
	PublishCellEdit(ctx context.Context, row int, field, value string) error
}

// ExpenseRow pairs a typed row with its zero-based data row index. The
// index survives empty-row filtering so edits always target the sheet
// row the caller saw.
type ExpenseRow struct {
	Row int `json:"row"`
	core.Expense
}

// Options groups the enumerated field vocabularies served to clients.
type Options struct {
	Categories []core.Option `json:"categories"`
	Types      []core.Option `json:"types"`
}

// ExpenseService reads and edits the expenses tab. Every operation
// fetches a fresh grid; the sheet is the single source of truth and
// other writers exist.
type ExpenseService struct {
	grid      sheets.Grid
	publisher EditPublisher
	logger    *applog.Logger
	events    *applog.StructuredLogger
	tab       string
	span      string
	schema    []sheets.Field
}

func NewExpenseService(grid sheets.Grid, publisher EditPublisher, logger *applog.Logger) *ExpenseService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentExpense)
	return &ExpenseService{
		grid:      grid,
		publisher: publisher,
		logger:    logger,
		events:    applog.NewStructuredLogger(logger),
		tab:       sheets.ExpensesTab,
		span:      sheets.ExpensesColumnSpan,
		schema:    sheets.ExpensesSchema,
	}
}

// List returns every non-empty data row, in sheet order. Cells that
// failed coercion are logged and degraded, never fatal.
func (s *ExpenseService) List(ctx context.Context) ([]ExpenseRow, error) {
	rows, _, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseRow, 0, len(rows))
	for _, r := range rows {
		if r.Expense.IsEmpty() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Unclassified returns the rows whose category matches no known option,
// the working queue of the classification view.
func (s *ExpenseService) Unclassified(ctx context.Context) ([]ExpenseRow, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseRow, 0, len(rows))
	for _, r := range rows {
		if !r.Expense.Classified() {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListOptions returns the enumerated vocabularies for category and type.
func (s *ExpenseService) ListOptions() Options {
	return Options{Categories: core.Categories, Types: core.Types}
}

// UpdateCell overwrites one field of one data row and returns the row as
// re-read after the write. Enumerated fields accept only known options;
// the accepted value is canonicalized before it reaches the sheet, so a
// lenient match never writes its lenient spelling.
func (s *ExpenseService) UpdateCell(ctx context.Context, row int, field, value string) (ExpenseRow, error) {
	f := sheets.FieldByKey(s.schema, field)
	if f == nil {
		return ExpenseRow{}, fmt.Errorf("field %q: %w", field, ErrUnknownField)
	}
	if row < 0 {
		return ExpenseRow{}, fmt.Errorf("row %d: %w", row, ErrRowOutOfRange)
	}

	canon, err := canonicalValue(field, value)
	if err != nil {
		return ExpenseRow{}, err
	}

	grid, ix, err := s.fetchGrid(ctx)
	if err != nil {
		return ExpenseRow{}, err
	}
	col, ok := ix.Column(field)
	if !ok {
		return ExpenseRow{}, fmt.Errorf("field %q: %w", field, ErrColumnUnresolved)
	}
	if row >= len(grid)-1 {
		return ExpenseRow{}, fmt.Errorf("row %d of %d: %w", row, len(grid)-1, ErrRowOutOfRange)
	}

	ref := sheets.CellRef(col, row)
	if err := s.grid.WriteCell(ctx, s.tab, ref, canon); err != nil {
		return ExpenseRow{}, err
	}
	s.events.LogCellEdit(ctx, row, field, ref)

	if s.publisher != nil {
		if err := s.publisher.PublishCellEdit(ctx, row, field, canon); err != nil {
			// The edit already landed; the event is best effort.
			s.logger.ErrorContext(ctx, "publish cell edit failed",
				"row", row,
				"field", field,
				"error", err)
		}
	}

	rows, _, err := s.fetch(ctx)
	if err != nil {
		return ExpenseRow{}, err
	}
	for _, r := range rows {
		if r.Row == row {
			return r, nil
		}
	}
	return ExpenseRow{}, fmt.Errorf("row %d: %w", row, ErrRowOutOfRange)
}

// canonicalValue enforces the edit contract of enumerated fields and
// passes every other field through untouched.
func canonicalValue(field, value string) (string, error) {
	switch field {
	case sheets.FieldCategory:
		opt := core.MatchCategory(value)
		if opt == nil {
			return "", &RejectedOptionError{Field: field, Value: value}
		}
		return opt.Value, nil
	case sheets.FieldType:
		opt := core.MatchType(value)
		if opt == nil {
			return "", &RejectedOptionError{Field: field, Value: value}
		}
		return opt.Value, nil
	default:
		return value, nil
	}
}

// fetchGrid reads the tab and resolves its header. A tab with no rows
// at all has no header either; reads treat that as zero data rows, and
// the empty index makes any write fail with ErrColumnUnresolved, since
// there is no column to address.
func (s *ExpenseService) fetchGrid(ctx context.Context) ([][]sheets.Cell, sheets.HeaderIndex, error) {
	grid, err := s.grid.ReadRange(ctx, sheets.TabRange(s.tab, s.span))
	if err != nil {
		return nil, nil, err
	}
	if len(grid) == 0 {
		return grid, sheets.HeaderIndex{}, nil
	}
	ix := sheets.ResolveHeader(grid[0], s.schema)
	s.logger.DebugContext(ctx, "header resolved",
		"columns", len(grid[0]),
		"fields", len(ix))
	return grid, ix, nil
}

func (s *ExpenseService) fetch(ctx context.Context) ([]ExpenseRow, []sheets.CellIssue, error) {
	grid, ix, err := s.fetchGrid(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(grid) <= 1 {
		return nil, nil, nil
	}
	mapped, issues := sheets.MapExpenses(grid[1:], ix)
	for _, issue := range issues {
		s.logger.WarnContext(ctx, "cell failed coercion",
			"row", issue.Row,
			"field", issue.Field,
			"raw", issue.Raw)
	}
	rows := make([]ExpenseRow, len(mapped))
	for i, e := range mapped {
		rows[i] = ExpenseRow{Row: i, Expense: e}
	}
	return rows, issues, nil
}
