package gridcache

import (
	"context"
	"testing"
	"time"

	"eclor/internal/sheets"
	"eclor/internal/sheets/memory"
)

type countingGrid struct {
	sheets.Grid
	reads int
}

func (c *countingGrid) ReadRange(ctx context.Context, rangeA1 string) ([][]sheets.Cell, error) {
	c.reads++
	return c.Grid.ReadRange(ctx, rangeA1)
}

func TestReadCaching(t *testing.T) {
	inner := &countingGrid{Grid: memory.NewSeeded()}
	g := Wrap(inner, time.Minute)
	ctx := context.Background()
	rng := sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan)

	for i := 0; i < 3; i++ {
		if _, err := g.ReadRange(ctx, rng); err != nil {
			t.Fatal(err)
		}
	}
	if inner.reads != 1 {
		t.Errorf("inner reads = %d, want 1", inner.reads)
	}
}

func TestWriteInvalidates(t *testing.T) {
	inner := &countingGrid{Grid: memory.NewSeeded()}
	g := Wrap(inner, time.Minute)
	ctx := context.Background()
	rng := sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan)

	if _, err := g.ReadRange(ctx, rng); err != nil {
		t.Fatal(err)
	}
	if err := g.WriteCell(ctx, sheets.ExpensesTab, "A2", "Péage A13"); err != nil {
		t.Fatal(err)
	}

	rows, err := g.ReadRange(ctx, rng)
	if err != nil {
		t.Fatal(err)
	}
	if inner.reads != 2 {
		t.Errorf("inner reads = %d, want cache miss after write", inner.reads)
	}
	if rows[1][0].Text != "Péage A13" {
		t.Errorf("read after write = %q", rows[1][0].Text)
	}
}

func TestCachedCopiesAreIsolated(t *testing.T) {
	g := Wrap(memory.NewSeeded(), time.Minute)
	ctx := context.Background()
	rng := sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan)

	first, err := g.ReadRange(ctx, rng)
	if err != nil {
		t.Fatal(err)
	}
	first[1][0] = sheets.TextCell("mutation locale")

	second, err := g.ReadRange(ctx, rng)
	if err != nil {
		t.Fatal(err)
	}
	if second[1][0].Text == "mutation locale" {
		t.Error("caller mutation leaked into the cache")
	}
}
