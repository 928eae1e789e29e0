package main

import (
	"fmt"

	"eclor/internal/amqp"
	applog "eclor/internal/log"
	"eclor/internal/sheets"
)

// worker records cell-edit events drained from the queue.
type worker struct {
	logger    *applog.Logger
	processed int
}

func newWorker(logger *applog.Logger) *worker {
	return &worker{logger: logger}
}

// handle writes one audit line per edit. A negative row is permanently
// malformed and gets dropped with a warning; an unknown field key is
// likely a newer publisher, so the delivery errors out and requeues
// until this binary catches up.
func (w *worker) handle(msg *amqp.CellEditMessage) error {
	if msg.Row < 0 {
		w.logger.Warn("Dropping cell edit with negative row",
			"row", msg.Row,
			"field", msg.Field)
		return nil
	}
	if sheets.FieldByKey(sheets.ExpensesSchema, msg.Field) == nil {
		return fmt.Errorf("cell edit names unknown field %q", msg.Field)
	}
	w.processed++
	w.logger.Info("Cell edit received",
		"row", msg.Row,
		"field", msg.Field,
		"value", msg.Value,
		"edited_at", msg.Timestamp)
	return nil
}
