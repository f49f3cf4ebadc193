// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// Request parameters are bound into the structs in requests.go and checked
// with ValidateStruct. Failures are returned as *RequestValidationError,
// whose message names the offending query or path parameter the way the
// client spelled it:
//
//	req := validation.CountyRequest{Name: r.URL.Query().Get("name")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // 400: "name is required"
//	}
//
// # Custom Tags
//
//   - pwsid: 2 to 16 ASCII letters or digits
//
// Field names in messages come from the `query` or `path` struct tag, so a
// field declared as
//
//	Months int `query:"months" validate:"min=1,max=240"`
//
// fails with "months must be at most 240".
//
// # Thread Safety
//
// The validator is a lazily built singleton and is safe for concurrent use.
package validation
