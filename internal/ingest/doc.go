// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package ingest loads the EPA SDWA CSV exports into the record store.

Four files are read from a directory:

	SDWA_PUB_WATER_SYSTEMS.csv        -> pub_water_systems
	SDWA_VIOLATIONS_ENFORCEMENT.csv   -> violations_enforcement
	SDWA_GEOGRAPHIC_AREAS.csv         -> geographic_areas
	SDWA_REF_CODE_VALUES.csv          -> ref_code_values

DuckDBReader parses each file with read_csv_auto (every column as VARCHAR)
and streams rows to the Ingester, which converts them to documents, replaces
the target collection and writes it in batches. Failed batch writes are
retried with exponential backoff up to Options.MaxRetryTime. Indexes are
created once all four collections are loaded.

Conversion keeps the documents in the shape the store reads:

  - empty cells are omitted
  - date columns become BSON datetimes when they parse, stay text when they
    do not, and are null when empty
  - POPULATION_SERVED_COUNT becomes an integer when it is one

Every file is checked for existence before any collection is reset, so a
missing export never leaves the store half replaced.
*/
package ingest
