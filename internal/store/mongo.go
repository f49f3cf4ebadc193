// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/metrics"
	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
)

// MongoStore is a RecordStore backed by one pooled MongoDB client. Create
// it once per process with Connect and share it across requests.
type MongoStore struct {
	client       *mongo.Client
	db           *mongo.Database
	queryTimeout time.Duration
}

// Connect creates the client pool and waits for the deployment to answer a
// ping, retrying with exponential backoff for up to cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("speedofwater").
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetMaxConnIdleTime(cfg.MaxIdleTime).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = cfg.ConnectTimeout

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		logging.Warn().Err(err).Dur("retry_in", wait).Msg("MongoDB not reachable yet")
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		//nolint:contextcheck // the caller's context may already be done
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	logging.Info().
		Str("database", cfg.Name).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return &MongoStore{
		client:       client,
		db:           client.Database(cfg.Name),
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

// Database exposes the underlying database handle for the ingest command.
func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

// do runs fn under the per-query timeout and records its duration and outcome.
func (s *MongoStore) do(ctx context.Context, op, collection string, fn func(ctx context.Context) error) error {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	if errors.Is(err, ErrNotFound) {
		metrics.RecordStoreQuery(op, collection, time.Since(start), nil)
		return err
	}
	metrics.RecordStoreQuery(op, collection, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *MongoStore) aggregate(ctx context.Context, collection string, pipeline query.Pipeline, out interface{}) error {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// count runs a pipeline ending in {$count: "n"}.
func (s *MongoStore) count(ctx context.Context, collection string, pipeline query.Pipeline) (int64, error) {
	var rows []struct {
		N int64 `bson:"n"`
	}
	if err := s.aggregate(ctx, collection, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].N, nil
}

// Ping implements RecordStore. Failures are reported as ErrUnavailable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.do(ctx, "ping", "", func(ctx context.Context) error {
		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil
	})
}

// Close implements RecordStore.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// SearchSystems implements RecordStore.
func (s *MongoStore) SearchSystems(ctx context.Context, q string, limit int) ([]models.WaterSystem, error) {
	var out []models.WaterSystem
	err := s.do(ctx, "search_systems", query.CollectionSystems, func(ctx context.Context) error {
		cursor, err := s.db.Collection(query.CollectionSystems).
			Find(ctx, query.SearchFilter(q), options.Find().SetLimit(int64(limit)))
		if err != nil {
			return err
		}
		return cursor.All(ctx, &out)
	})
	return out, err
}

// FindSystem implements RecordStore.
func (s *MongoStore) FindSystem(ctx context.Context, pwsid string) (models.WaterSystem, error) {
	var out models.WaterSystem
	err := s.do(ctx, "find_system", query.CollectionSystems, func(ctx context.Context) error {
		err := s.db.Collection(query.CollectionSystems).FindOne(ctx, query.SystemFilter(pwsid)).Decode(&out)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	})
	return out, err
}

// FindViolations implements RecordStore.
func (s *MongoStore) FindViolations(ctx context.Context, pwsid string) ([]models.ViolationRecord, error) {
	var out []models.ViolationRecord
	err := s.do(ctx, "find_violations", query.CollectionViolations, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionViolations, query.ViolationsForSystem(pwsid), &out)
	})
	return out, err
}

// FindViolationsForSystems implements RecordStore.
func (s *MongoStore) FindViolationsForSystems(ctx context.Context, pwsids []string) ([]models.ViolationRecord, error) {
	if len(pwsids) == 0 {
		return nil, nil
	}
	var out []models.ViolationRecord
	err := s.do(ctx, "find_violations_for_systems", query.CollectionViolations, func(ctx context.Context) error {
		cursor, err := s.db.Collection(query.CollectionViolations).
			Find(ctx, query.SystemFilter(pwsids...), options.Find().SetProjection(query.ClassifierProjection()))
		if err != nil {
			return err
		}
		return cursor.All(ctx, &out)
	})
	return out, err
}

// CountySystems implements RecordStore.
func (s *MongoStore) CountySystems(ctx context.Context, county string) ([]models.SystemRef, error) {
	var rows []systemRow
	err := s.do(ctx, "county_systems", query.CollectionGeography, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionGeography, query.SystemsInCounty(county), &rows)
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.SystemRef, len(rows))
	for i, r := range rows {
		out[i] = r.ref()
	}
	return out, nil
}

// CountViolations implements RecordStore.
func (s *MongoStore) CountViolations(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	var n int64
	err := s.do(ctx, "count_"+filter.String(), query.CollectionViolations, func(ctx context.Context) error {
		var err error
		n, err = s.db.Collection(query.CollectionViolations).CountDocuments(ctx, query.ViolationFilter(filter))
		return err
	})
	return n, err
}

// CountDistinctSystems implements RecordStore.
func (s *MongoStore) CountDistinctSystems(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	var n int64
	err := s.do(ctx, "distinct_systems_"+filter.String(), query.CollectionViolations, func(ctx context.Context) error {
		var err error
		n, err = s.count(ctx, query.CollectionViolations, query.DistinctKnownSystems(query.ViolationFilter(filter)))
		return err
	})
	return n, err
}

// SystemTotals implements RecordStore.
func (s *MongoStore) SystemTotals(ctx context.Context) (models.SystemTotals, error) {
	var rows []models.SystemTotals
	err := s.do(ctx, "system_totals", query.CollectionSystems, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionSystems, query.SystemTotals(), &rows)
	})
	if err != nil || len(rows) == 0 {
		return models.SystemTotals{}, err
	}
	return rows[0], nil
}

// GroupByCategory implements RecordStore.
func (s *MongoStore) GroupByCategory(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	var rows []struct {
		Code     models.Text `bson:"code"`
		Category models.Text `bson:"category"`
		Count    int64       `bson:"count"`
	}
	err := s.do(ctx, "group_by_category", query.CollectionViolations, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionViolations, query.ViolationsByCategory(limit), &rows)
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.CategoryCount, len(rows))
	for i, r := range rows {
		out[i] = models.CategoryCount{Code: string(r.Code), Category: string(r.Category), Count: r.Count}
	}
	return out, nil
}

// GroupByMonth implements RecordStore.
func (s *MongoStore) GroupByMonth(ctx context.Context, since, until time.Time) ([]models.MonthCount, error) {
	var out []models.MonthCount
	err := s.do(ctx, "group_by_month", query.CollectionViolations, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionViolations, query.ViolationsByMonth(since.UTC(), until.UTC()), &out)
	})
	return out, err
}

// TopViolators implements RecordStore.
func (s *MongoStore) TopViolators(ctx context.Context, limit int) ([]models.TopViolator, error) {
	var rows []systemRow
	err := s.do(ctx, "top_violators", query.CollectionViolations, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionViolations, query.TopViolators(limit), &rows)
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.TopViolator, len(rows))
	for i, r := range rows {
		out[i] = r.violator()
	}
	return out, nil
}

// StatusDistribution implements RecordStore.
func (s *MongoStore) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	var out []models.StatusCount
	err := s.do(ctx, "status_distribution", query.CollectionViolations, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionViolations, query.StatusDistribution(), &out)
	})
	return out, err
}

// TopCounties implements RecordStore.
func (s *MongoStore) TopCounties(ctx context.Context, limit int) ([]models.CountyCount, error) {
	var out []models.CountyCount
	err := s.do(ctx, "top_counties", query.CollectionGeography, func(ctx context.Context) error {
		return s.aggregate(ctx, query.CollectionGeography, query.TopCounties(limit), &out)
	})
	return out, err
}

// Coverage implements RecordStore.
func (s *MongoStore) Coverage(ctx context.Context) (models.CoverageCounts, error) {
	var out models.CoverageCounts
	err := s.do(ctx, "coverage", query.CollectionGeography, func(ctx context.Context) error {
		var err error
		if out.GeographicRecords, err = s.db.Collection(query.CollectionGeography).CountDocuments(ctx, bson.M{}); err != nil {
			return err
		}
		if out.SystemsWithViolations, err = s.count(ctx, query.CollectionViolations, query.DistinctSystems(bson.M{})); err != nil {
			return err
		}
		if out.SystemsWithoutGeography, err = s.count(ctx, query.CollectionSystems, query.SystemsWithoutGeography()); err != nil {
			return err
		}
		out.GeographyWithoutSystems, err = s.count(ctx, query.CollectionGeography, query.GeographyWithoutSystems())
		return err
	})
	return out, err
}

var _ RecordStore = (*MongoStore)(nil)
