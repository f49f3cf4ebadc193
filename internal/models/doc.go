// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package models defines the typed records read from the SDWIS document store
and the derived payloads served by the API.

Store documents are loosely typed: the same field may hold a BSON datetime in
one row, an ISO string in another, and be missing in a third. The boundary
types in this package absorb that variation during BSON decoding so the
classifier only ever sees well-defined values:

  - Date: nullable date that also remembers malformed input
  - Text: free text coerced from any scalar
  - Code: categorical code in normalized form ("02" == "2")
  - Count: nullable non-negative integer

Decoding into these types never returns an error. Unsupported values degrade
to null or malformed, which the classifier maps to the Unknown state.

Record types mirror the four collections of the speedofwater database:

  - WaterSystem (pub_water_systems)
  - ViolationRecord (violations_enforcement)
  - GeographicArea (geographic_areas)
  - ReferenceCode (ref_code_values)
*/
package models
