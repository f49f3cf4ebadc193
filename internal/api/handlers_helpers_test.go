// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/speedofwater/internal/validation"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Los Ángeles", "Los Ángeles"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.input); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 10, false},
		{"limit=", 10, false},
		{"limit=25", 25, false},
		{"limit=-3", -3, false},
		{"limit=ten", 0, true},
		{"limit=1e3", 0, true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/v1/regulatory-summary?"+tt.query, nil)
		got, err := getIntParam(req, "limit", 10)

		if tt.wantErr {
			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%q: expected validation error, got %v", tt.query, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %d, %v; want %d", tt.query, got, err, tt.want)
		}
	}
}

func TestGenerateETag_Stable(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"waterSystems":[]}`))
	b := generateETag([]byte(`{"waterSystems":[]}`))
	c := generateETag([]byte(`{"violations":[]}`))

	if a != b {
		t.Errorf("Same input produced %s and %s", a, b)
	}
	if a == c {
		t.Error("Different input produced the same ETag")
	}
}

func TestValidateRequest_NilOnSuccess(t *testing.T) {
	t.Parallel()

	if err := validateRequest(&validation.SearchRequest{Query: "arvin"}); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
