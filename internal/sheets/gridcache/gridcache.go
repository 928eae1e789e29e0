// Package gridcache decorates a sheets.Grid with a short-TTL read
// cache. Writes invalidate the whole cache, so a caller always reads
// its own edits back; external edits become visible once the TTL
// lapses.
package gridcache

import (
	"context"
	"time"

	"eclor/internal/cache"
	"eclor/internal/sheets"
)

type Grid struct {
	inner sheets.Grid
	reads *cache.LRUCache[[][]sheets.Cell]
}

// Wrap decorates inner with a read cache. A TTL of a few seconds is
// enough to absorb the burst of range reads a single API request fans
// out into.
func Wrap(inner sheets.Grid, ttl time.Duration) *Grid {
	return &Grid{
		inner: inner,
		reads: cache.NewLRUCache[[][]sheets.Cell](16, ttl),
	}
}

func (g *Grid) ReadRange(ctx context.Context, rangeA1 string) ([][]sheets.Cell, error) {
	if rows, ok := g.reads.Get(rangeA1); ok {
		return copyGrid(rows), nil
	}
	rows, err := g.inner.ReadRange(ctx, rangeA1)
	if err != nil {
		return nil, err
	}
	g.reads.Set(rangeA1, copyGrid(rows))
	return rows, nil
}

func (g *Grid) WriteCell(ctx context.Context, tab, a1 string, value any) error {
	if err := g.inner.WriteCell(ctx, tab, a1, value); err != nil {
		return err
	}
	// A single cell can appear in any cached range; drop everything.
	g.reads.Clear()
	return nil
}

func copyGrid(rows [][]sheets.Cell) [][]sheets.Cell {
	out := make([][]sheets.Cell, len(rows))
	for i, r := range rows {
		out[i] = append([]sheets.Cell(nil), r...)
	}
	return out
}
