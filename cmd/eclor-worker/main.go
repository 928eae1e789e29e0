// eclor-worker drains the cell-edit queue the API server publishes to,
// writing an audit line per edit and acknowledging deliveries.
package main

import (
	"os"
	"time"

	"eclor/internal/amqp"
	"eclor/internal/cli"
	applog "eclor/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required to consume cell edits")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, func() {
		if err := client.Close(); err != nil {
			logger.Error("AMQP close error", "error", err)
		}
	})

	logger.Info("Starting eclor worker",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)

	w := newWorker(logger.WithComponent(applog.ComponentAMQP))
	if err := client.ConsumeCellEdits(ctx, w.handle); err != nil && ctx.Err() == nil {
		logger.Error("Consume loop ended", "error", err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully", "processed", w.processed)
}
