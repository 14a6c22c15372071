// Command kmeans clusters the inner join of two CSV inputs.
//
//	kmeans [flags] k [iter] epsilon input1 input2
//
// Inputs are local paths, s3://bucket/key or minio://bucket/key and may be
// compressed (.gz, .zst, .lz4). Rows are joined on their first column and
// ordered by it. Initial centroids are chosen with k-means++.
//
// The first output line lists the keys of the initial centroids; each
// following line holds one final centroid with four decimals.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/resource"
	"github.com/hupe1980/kmeans/seeding"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(cfg, stderr)

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.memoryLimit,
		IOLimitBytesPerSec: cfg.ioLimit,
	})

	tbl, err := dataset.Load(ctx, newSources(cfg), cfg.inputs, dataset.WithResourceController(rc))
	if err != nil {
		logger.ErrorContext(ctx, "load inputs", "inputs", cfg.inputs, "error", err)
		fmt.Fprintln(stdout, "An Error Has Occurred")
		return 1
	}
	logger.InfoContext(ctx, "inputs loaded", "rows", tbl.Len(), "dimension", tbl.Dim())

	if errs := cfg.validate(tbl.Len()); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(stdout, e)
		}
		return 1
	}

	idx, err := seeding.KMeansPlusPlus(tbl.Rows, cfg.k, rand.New(rand.NewSource(cfg.seed)))
	if err != nil {
		logger.ErrorContext(ctx, "seeding", "error", err)
		fmt.Fprintln(stdout, "An Error Has Occurred")
		return 1
	}

	metrics := &kmeans.BasicMetricsCollector{}
	res, err := kmeans.Fit(ctx, tbl.Rows, seeding.Gather(tbl.Rows, idx),
		kmeans.WithMaxIter(cfg.iter),
		kmeans.WithEpsilon(cfg.epsilon),
		kmeans.WithEmptyClusterPolicy(cfg.emptyCluster),
		kmeans.WithLogger(logger),
		kmeans.WithMetricsCollector(metrics),
		kmeans.WithResourceController(rc),
	)
	if err != nil {
		fmt.Fprintln(stdout, "An Error Has Occurred")
		return 1
	}

	logMembers(ctx, logger, res)
	stats := metrics.GetStats()
	logger.DebugContext(ctx, "metrics",
		"iterations", stats.IterationCount,
		"iteration_avg_ns", stats.IterationAvgNanos,
		"fit_ns", stats.FitAvgNanos,
	)

	keys := make([]string, len(idx))
	for i, j := range idx {
		keys[i] = strconv.FormatInt(int64(tbl.Keys[j]), 10)
	}
	fmt.Fprintln(stdout, strings.Join(keys, ","))

	for _, c := range res.Centroids {
		fields := make([]string, len(c))
		for i, v := range c {
			fields[i] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintln(stdout, strings.Join(fields, ","))
	}

	return 0
}

func newLogger(cfg *config, w io.Writer) *kmeans.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logFormat == "json" {
		return kmeans.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return kmeans.NewLogger(slog.NewTextHandler(w, opts))
}

func logMembers(ctx context.Context, logger *kmeans.Logger, res *kmeans.Result) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	members, err := res.Members()
	if err != nil {
		logger.WarnContext(ctx, "cluster members", "error", err)
		return
	}
	for i, m := range members {
		logger.DebugContext(ctx, "cluster",
			"cluster", i,
			"size", m.GetCardinality(),
			"bitmap_bytes", m.GetSizeInBytes(),
		)
	}
}
