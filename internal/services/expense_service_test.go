package services

import (
	"context"
	"errors"
	"testing"

	"eclor/internal/sheets"
	"eclor/internal/sheets/memory"
)

type recordingPublisher struct {
	rows   []int
	fields []string
	values []string
	err    error
}

func (p *recordingPublisher) PublishCellEdit(_ context.Context, row int, field, value string) error {
	p.rows = append(p.rows, row)
	p.fields = append(p.fields, field)
	p.values = append(p.values, value)
	return p.err
}

func newTestService(t *testing.T) (*ExpenseService, *memory.Store, *recordingPublisher) {
	t.Helper()
	store := memory.NewSeeded()
	pub := &recordingPublisher{}
	return NewExpenseService(store, pub, nil), store, pub
}

func TestList_SkipsEmptyRowsKeepsIndices(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	// Blank a middle row; the rows after it must keep their sheet indices.
	grid, err := store.ReadRange(ctx, sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan))
	if err != nil {
		t.Fatal(err)
	}
	grid[2] = make([]sheets.Cell, len(grid[2]))
	store.SetTab(sheets.ExpensesTab, grid)

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 after blanking one of 4", len(rows))
	}
	if rows[0].Row != 0 || rows[1].Row != 2 || rows[2].Row != 3 {
		t.Errorf("indices = %d %d %d, want 0 2 3", rows[0].Row, rows[1].Row, rows[2].Row)
	}
}

func TestList_EmptyTabIsZeroRows(t *testing.T) {
	store := memory.New()
	store.SetTab(sheets.ExpensesTab, nil)
	svc := NewExpenseService(store, nil, nil)
	ctx := context.Background()

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("empty tab must list cleanly, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}

	unclassified, err := svc.Unclassified(ctx)
	if err != nil {
		t.Fatalf("Unclassified on empty tab: %v", err)
	}
	if len(unclassified) != 0 {
		t.Errorf("unclassified = %d, want 0", len(unclassified))
	}

	// A header with no data rows is equally empty.
	store.SetTab(sheets.ExpensesTab, [][]sheets.Cell{{sheets.TextCell("🧾 Libellé")}})
	rows, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("header-only tab must list cleanly, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("header-only rows = %d, want 0", len(rows))
	}
}

func TestUpdateCell_EmptyTabHasNowhereToWrite(t *testing.T) {
	store := memory.New()
	store.SetTab(sheets.ExpensesTab, nil)
	svc := NewExpenseService(store, nil, nil)

	_, err := svc.UpdateCell(context.Background(), 0, sheets.FieldInvoice, "FAC-1")
	if !errors.Is(err, ErrColumnUnresolved) {
		t.Fatalf("got %v, want ErrColumnUnresolved", err)
	}
}

func TestUnclassified(t *testing.T) {
	svc, _, _ := newTestService(t)
	rows, err := svc.Unclassified(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("unclassified = %d, want 1", len(rows))
	}
	if rows[0].Label != "Repas client" || rows[0].Row != 2 {
		t.Errorf("got row %d %q", rows[0].Row, rows[0].Label)
	}
}

func TestUpdateCell_ClassifiesRowAndPublishes(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	// Lenient input (bare lowercase label) must land canonicalized.
	row, err := svc.UpdateCell(ctx, 2, sheets.FieldCategory, "repas")
	if err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	if row.Category != "🍽️ Repas" {
		t.Errorf("written category = %q, want canonical option", row.Category)
	}
	if !row.Classified() {
		t.Error("row should classify after the edit")
	}

	if len(pub.rows) != 1 || pub.rows[0] != 2 || pub.fields[0] != sheets.FieldCategory {
		t.Fatalf("published: rows=%v fields=%v", pub.rows, pub.fields)
	}
	if pub.values[0] != "🍽️ Repas" {
		t.Errorf("published value = %q, want canonical", pub.values[0])
	}

	remaining, err := svc.Unclassified(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Errorf("unclassified after edit = %d, want 0", len(remaining))
	}
}

func TestUpdateCell_RejectsFreeTextForEnumeratedFields(t *testing.T) {
	svc, store, pub := newTestService(t)
	ctx := context.Background()

	for _, field := range []string{sheets.FieldCategory, sheets.FieldType} {
		_, err := svc.UpdateCell(ctx, 0, field, "Taxi")
		var rerr *RejectedOptionError
		if !errors.As(err, &rerr) {
			t.Fatalf("field %s: got %v, want RejectedOptionError", field, err)
		}
		if rerr.Value != "Taxi" {
			t.Errorf("rejected value = %q", rerr.Value)
		}
	}
	if len(pub.rows) != 0 {
		t.Error("rejected edits must not publish")
	}

	// The sheet must be untouched.
	rows, _ := store.Expenses(ctx)
	if rows[0].Category != "🅿️ Parking" {
		t.Errorf("category mutated to %q", rows[0].Category)
	}
}

func TestUpdateCell_FreeTextFieldPassesThrough(t *testing.T) {
	svc, _, _ := newTestService(t)
	row, err := svc.UpdateCell(context.Background(), 0, sheets.FieldInvoice, "FAC-2024-099")
	if err != nil {
		t.Fatal(err)
	}
	if row.Invoice != "FAC-2024-099" {
		t.Errorf("invoice = %q", row.Invoice)
	}
}

func TestUpdateCell_UnknownField(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.UpdateCell(context.Background(), 0, "couleur", "bleu")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("got %v, want ErrUnknownField", err)
	}
}

func TestUpdateCell_RowOutOfRange(t *testing.T) {
	svc, _, _ := newTestService(t)
	for _, row := range []int{-1, 99} {
		_, err := svc.UpdateCell(context.Background(), row, sheets.FieldInvoice, "x")
		if !errors.Is(err, ErrRowOutOfRange) {
			t.Fatalf("row %d: got %v, want ErrRowOutOfRange", row, err)
		}
	}
}

func TestUpdateCell_ColumnMissingFromSheet(t *testing.T) {
	store := memory.New()
	store.SetTab(sheets.ExpensesTab, [][]sheets.Cell{
		{sheets.TextCell("🧾 Libellé")},
		{sheets.TextCell("Essence")},
	})
	svc := NewExpenseService(store, nil, nil)
	_, err := svc.UpdateCell(context.Background(), 0, sheets.FieldCategory, "🅿️ Parking")
	if !errors.Is(err, ErrColumnUnresolved) {
		t.Fatalf("got %v, want ErrColumnUnresolved", err)
	}
}

func TestUpdateCell_PublishFailureDoesNotFailEdit(t *testing.T) {
	store := memory.NewSeeded()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewExpenseService(store, pub, nil)

	row, err := svc.UpdateCell(context.Background(), 2, sheets.FieldCategory, "🍽️ Repas")
	if err != nil {
		t.Fatalf("edit must survive publish failure, got %v", err)
	}
	if row.Category != "🍽️ Repas" {
		t.Errorf("category = %q", row.Category)
	}
}

func TestListOptions(t *testing.T) {
	svc, _, _ := newTestService(t)
	opts := svc.ListOptions()
	if len(opts.Categories) != 11 || len(opts.Types) != 3 {
		t.Fatalf("options = %d categories, %d types", len(opts.Categories), len(opts.Types))
	}
}
