// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package store provides read access to the SDWIS record store.

RecordStore is implemented twice:

  - MongoStore runs the filters and aggregation pipelines from the query
    package against MongoDB.
  - MemoryStore evaluates the same operations in process over typed
    records. It backs local development (STORE_BACKEND=memory) and the
    tests of every package above this one.

Guarded wraps either implementation in a circuit breaker so an
unreachable database fails fast with ErrUnavailable.

Both MongoStore and MemoryStore also implement Loader, which the
ingest command uses to replace collection contents.

# Errors

  - ErrNotFound: the requested system does not exist
  - ErrUnavailable: the store cannot be reached or the breaker is open

Any other error is an internal failure; callers report it generically.
*/
package store
