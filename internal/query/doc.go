// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

// Package query builds the MongoDB filters and aggregation pipelines run
// against the speedofwater database.
//
// Builders are pure: they return bson values and never touch a connection.
// Filters that select violations by state are translations of the rules in
// package compliance and must change together with them. Pipelines return
// raw system fields (name, population) so that defaults are applied by the
// same Go code for every backend.
package query
