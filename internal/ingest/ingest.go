// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/time/rate"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/metrics"
	"github.com/tomtom215/speedofwater/internal/store"
)

// Options tunes batch writes.
type Options struct {
	BatchSize       int
	MaxRetryTime    time.Duration // total time spent retrying one batch
	InitialInterval time.Duration // first retry delay
	BatchesPerSec   float64       // 0 disables throttling
}

// OptionsFromConfig maps the ingest config section.
func OptionsFromConfig(cfg config.IngestConfig) Options {
	return Options{
		BatchSize:     cfg.BatchSize,
		MaxRetryTime:  cfg.MaxRetryTime,
		BatchesPerSec: cfg.MaxBatchesPerSecond,
	}
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = 1000
	}
	if o.MaxRetryTime <= 0 {
		o.MaxRetryTime = 2 * time.Minute
	}
	if o.InitialInterval <= 0 {
		o.InitialInterval = 500 * time.Millisecond
	}
	return o
}

// CollectionReport summarizes one loaded file.
type CollectionReport struct {
	Collection string
	File       string
	Rows       int
	Batches    int
	Retries    int
	Duration   time.Duration
}

// Report summarizes a full ingest run.
type Report struct {
	Collections []CollectionReport
	Duration    time.Duration
}

// TotalRows returns the number of documents written.
func (r *Report) TotalRows() int {
	n := 0
	for _, c := range r.Collections {
		n += c.Rows
	}
	return n
}

// Ingester replaces store collections with CSV contents.
type Ingester struct {
	reader  RowReader
	loader  store.Loader
	opts    Options
	sources []Source
	limiter *rate.Limiter
}

// New creates an Ingester over the default SDWA sources.
func New(reader RowReader, loader store.Loader, opts Options) *Ingester {
	opts = opts.withDefaults()
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.BatchesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.BatchesPerSec), 1)
	}
	return &Ingester{
		reader:  reader,
		loader:  loader,
		opts:    opts,
		sources: DefaultSources(),
		limiter: limiter,
	}
}

// Run loads every source from dir and then ensures indexes. It fails
// before touching the store if any file is missing.
func (in *Ingester) Run(ctx context.Context, dir string) (*Report, error) {
	start := time.Now()

	var missing []string
	for _, src := range in.sources {
		if _, err := os.Stat(filepath.Join(dir, src.File)); err != nil {
			missing = append(missing, src.File)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing input files in %s: %s", dir, strings.Join(missing, ", "))
	}

	report := &Report{Collections: make([]CollectionReport, 0, len(in.sources))}
	for _, src := range in.sources {
		cr, err := in.Load(ctx, filepath.Join(dir, src.File), src.Collection)
		if err != nil {
			return report, err
		}
		report.Collections = append(report.Collections, cr)
	}

	if err := in.loader.EnsureIndexes(ctx); err != nil {
		return report, fmt.Errorf("failed to create indexes: %w", err)
	}

	report.Duration = time.Since(start)
	logging.Info().
		Int("rows", report.TotalRows()).
		Dur("duration", report.Duration).
		Msg("Ingest complete")
	return report, nil
}

// Load replaces collection with the rows of the CSV at path.
func (in *Ingester) Load(ctx context.Context, path, collection string) (CollectionReport, error) {
	start := time.Now()
	cr := CollectionReport{Collection: collection, File: filepath.Base(path)}
	logger := logging.WithComponent("ingest")

	if err := in.loader.ResetCollection(ctx, collection); err != nil {
		return cr, fmt.Errorf("failed to reset %s: %w", collection, err)
	}

	batch := make([]bson.M, 0, in.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := in.limiter.Wait(ctx); err != nil {
			return err
		}
		retries, err := in.insertWithRetry(ctx, collection, batch)
		cr.Retries += retries
		if err != nil {
			return err
		}
		cr.Rows += len(batch)
		cr.Batches++
		metrics.RecordIngestBatch(collection, len(batch))
		batch = make([]bson.M, 0, in.opts.BatchSize)
		return nil
	}

	err := in.reader.ReadRows(ctx, path, func(row Row) error {
		batch = append(batch, Document(collection, row))
		if len(batch) >= in.opts.BatchSize {
			return flush()
		}
		return nil
	})
	if err == nil {
		err = flush()
	}
	cr.Duration = time.Since(start)
	if err != nil {
		return cr, fmt.Errorf("failed to load %s: %w", collection, err)
	}

	logger.Info().
		Str("collection", collection).
		Str("file", cr.File).
		Int("rows", cr.Rows).
		Int("batches", cr.Batches).
		Int("retries", cr.Retries).
		Dur("duration", cr.Duration).
		Msg("Collection loaded")
	return cr, nil
}

// insertWithRetry writes one batch, retrying with exponential backoff.
// Context errors are not retried.
func (in *Ingester) insertWithRetry(ctx context.Context, collection string, docs []bson.M) (int, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = in.opts.InitialInterval
	b.MaxElapsedTime = in.opts.MaxRetryTime

	retries := 0
	op := func() error {
		err := in.loader.InsertBatch(ctx, collection, docs)
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		retries++
		metrics.RecordIngestRetry(collection)
		logging.Warn().Err(err).
			Str("collection", collection).
			Int("docs", len(docs)).
			Dur("retry_in", wait).
			Msg("Batch insert failed, retrying")
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return retries, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return retries, nil
}
