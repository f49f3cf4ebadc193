// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/query"
)

// collectionIndexes lists the indexes the API queries rely on.
var collectionIndexes = map[string][]mongo.IndexModel{
	query.CollectionSystems: {
		{Keys: bson.D{{Key: query.FieldPWSID, Value: 1}}, Options: options.Index().SetName("pwsid")},
	},
	query.CollectionViolations: {
		{Keys: bson.D{{Key: query.FieldPWSID, Value: 1}}, Options: options.Index().SetName("pwsid")},
		{Keys: bson.D{{Key: query.FieldNonComplianceBegin, Value: -1}}, Options: options.Index().SetName("non_compl_begin")},
		{Keys: bson.D{{Key: query.FieldStatus, Value: 1}}, Options: options.Index().SetName("status")},
	},
	query.CollectionGeography: {
		{Keys: bson.D{{Key: query.FieldPWSID, Value: 1}}, Options: options.Index().SetName("pwsid")},
		{Keys: bson.D{{Key: query.FieldCounty, Value: 1}}, Options: options.Index().SetName("county")},
	},
	query.CollectionReference: {
		{
			Keys:    bson.D{{Key: query.FieldValueType, Value: 1}, {Key: query.FieldValueCode, Value: 1}},
			Options: options.Index().SetName("type_code"),
		},
	},
}

// EnsureIndexes implements Loader. Creating an existing index is a no-op.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{
		query.CollectionSystems,
		query.CollectionViolations,
		query.CollectionGeography,
		query.CollectionReference,
	} {
		created, err := s.db.Collection(name).Indexes().CreateMany(ctx, collectionIndexes[name])
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		logging.Debug().Str("collection", name).Strs("indexes", created).Msg("Indexes ensured")
	}
	return nil
}

// ResetCollection implements Loader.
func (s *MongoStore) ResetCollection(ctx context.Context, collection string) error {
	return s.do(ctx, "reset", collection, func(ctx context.Context) error {
		_, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{})
		return err
	})
}

// InsertBatch implements Loader. The batch is written unordered so one
// rejected document does not stop the rest.
func (s *MongoStore) InsertBatch(ctx context.Context, collection string, docs []bson.M) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	return s.do(ctx, "insert_batch", collection, func(ctx context.Context) error {
		_, err := s.db.Collection(collection).InsertMany(ctx, batch, options.InsertMany().SetOrdered(false))
		return err
	})
}

var _ Loader = (*MongoStore)(nil)
