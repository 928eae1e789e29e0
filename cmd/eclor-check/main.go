// eclor-check probes a configured backend: it resolves the expense tab
// header against the schema, maps the rows, and reports the option
// vocabularies. Useful after a sheet restructure or credential rotation.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"eclor/internal/backend"
	"eclor/internal/cli"
	"eclor/internal/core"
	"eclor/internal/services"
	"eclor/internal/sheets"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Backend configuration error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to create backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
	}()

	svc := services.NewExpenseService(result.Backend, nil, logger)

	var (
		ix           sheets.HeaderIndex
		header       []sheets.Cell
		rows         []services.ExpenseRow
		unclassified []services.ExpenseRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grid, err := result.Backend.ReadRange(gctx, sheets.TabRange(sheets.ExpensesTab, sheets.ExpensesColumnSpan))
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if len(grid) == 0 {
			return fmt.Errorf("tab %q is empty", sheets.ExpensesTab)
		}
		header = grid[0]
		ix = sheets.ResolveHeader(header, sheets.ExpensesSchema)
		return nil
	})
	g.Go(func() error {
		var err error
		rows, err = svc.List(gctx)
		if err != nil {
			return fmt.Errorf("list rows: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		unclassified, err = svc.Unclassified(gctx)
		if err != nil {
			return fmt.Errorf("list unclassified: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("Probe failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("tab %q: %d header columns, %d of %d fields resolved\n",
		sheets.ExpensesTab, len(header), len(ix), len(sheets.ExpensesSchema))

	keys := make([]string, 0, len(ix))
	for key := range ix {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return ix[keys[i]] < ix[keys[j]] })
	for _, key := range keys {
		col := ix[key]
		fmt.Printf("  %-4s %-18s %s\n", sheets.ColumnLetter(col), key, header[col].String())
	}
	for _, f := range sheets.ExpensesSchema {
		if _, ok := ix.Column(f.Key); !ok {
			fmt.Printf("  MISSING %-14s (label %q)\n", f.Key, f.Label)
		}
	}

	var total float64
	for _, r := range rows {
		total += r.AmountTTC
	}
	fmt.Printf("\n%d rows, %d unclassified, total %s\n",
		len(rows), len(unclassified), core.FormatEuros(total))
	fmt.Printf("%d categories, %d types\n", len(core.Categories), len(core.Types))
}
