// Command ordjoin joins sorted key/value files in one streaming pass.
//
//	ordjoin inner prices.tsv stock.tsv.zst
//	ordjoin outer --empty=0 this-week.yaml last-week.yaml
//	ordjoin filter wanted.keys catalog.tsv.gz
//	ordjoin intersect a.keys b.keys c.keys
//	ordjoin check --natural *.tsv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/havoc-io/ordered-iter/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, environment{
		stdout:           os.Stdout,
		stderr:           os.Stderr,
		configureLogging: logger.ConfigureLoggingWithOptions,
		gatherer:         prometheus.DefaultGatherer,
	}, os.Args[1:])

	stop()

	if err != nil {
		logger.Get(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
