// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
)

var (
	// ErrNotFound is returned when a requested water system does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrUnavailable is returned when the store cannot serve requests.
	ErrUnavailable = errors.New("store: unavailable")
)

// RecordStore is the read side of the SDWIS collections.
type RecordStore interface {
	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Close releases connections.
	Close(ctx context.Context) error

	// SearchSystems matches q case-insensitively as a literal substring of
	// the system name or PWSID, returning at most limit systems.
	SearchSystems(ctx context.Context, q string, limit int) ([]models.WaterSystem, error)

	// FindSystem returns one system or ErrNotFound.
	FindSystem(ctx context.Context, pwsid string) (models.WaterSystem, error)

	// FindViolations returns every row of a system with reference
	// descriptions joined.
	FindViolations(ctx context.Context, pwsid string) ([]models.ViolationRecord, error)

	// FindViolationsForSystems returns the classifier fields of every row
	// belonging to any of pwsids.
	FindViolationsForSystems(ctx context.Context, pwsids []string) ([]models.ViolationRecord, error)

	// CountySystems lists the distinct systems serving a county, matched
	// case-insensitively and exactly, ordered by PWSID.
	CountySystems(ctx context.Context, county string) ([]models.SystemRef, error)

	// CountViolations counts rows matching filter.
	CountViolations(ctx context.Context, filter models.ViolationFilter) (int64, error)

	// CountDistinctSystems counts distinct PWSIDs among rows matching filter.
	// PWSIDs without a pub_water_systems document are not counted.
	CountDistinctSystems(ctx context.Context, filter models.ViolationFilter) (int64, error)

	// SystemTotals counts systems and sums population served.
	SystemTotals(ctx context.Context) (models.SystemTotals, error)

	// GroupByCategory returns the limit largest violation-code groups.
	GroupByCategory(ctx context.Context, limit int) ([]models.CategoryCount, error)

	// GroupByMonth buckets rows by non-compliance begin month in [since, until).
	GroupByMonth(ctx context.Context, since, until time.Time) ([]models.MonthCount, error)

	// TopViolators ranks systems by row count.
	TopViolators(ctx context.Context, limit int) ([]models.TopViolator, error)

	// StatusDistribution counts rows per raw status value.
	StatusDistribution(ctx context.Context) ([]models.StatusCount, error)

	// TopCounties ranks counties by distinct systems served.
	TopCounties(ctx context.Context, limit int) ([]models.CountyCount, error)

	// Coverage reports cross-collection consistency counts.
	Coverage(ctx context.Context) (models.CoverageCounts, error)
}

// Loader replaces collection contents. It is used by the ingest command.
type Loader interface {
	// ResetCollection removes every document from a collection.
	ResetCollection(ctx context.Context, collection string) error

	// InsertBatch appends documents to a collection.
	InsertBatch(ctx context.Context, collection string, docs []bson.M) error

	// EnsureIndexes creates the indexes the API queries rely on.
	EnsureIndexes(ctx context.Context) error
}

// systemRow is a joined system as produced by the county and top-violator
// pipelines, before display defaults are applied.
type systemRow struct {
	PWSID          models.Text  `bson:"PWSID"`
	Name           models.Text  `bson:"PWS_NAME"`
	Population     models.Count `bson:"POPULATION_SERVED_COUNT"`
	ViolationCount int64        `bson:"violationCount"`
}

func (r systemRow) ref() models.SystemRef {
	return models.SystemRef{
		PWSID:      string(r.PWSID),
		Name:       models.WaterSystem{Name: r.Name}.DisplayName(),
		Population: r.Population.Or(0),
	}
}

func (r systemRow) violator() models.TopViolator {
	ref := r.ref()
	return models.TopViolator{
		PWSID:          ref.PWSID,
		Name:           ref.Name,
		ViolationCount: r.ViolationCount,
		Population:     ref.Population,
	}
}
