// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateStruct_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "empty search", input: &SearchRequest{}},
		{name: "search at limit", input: &SearchRequest{Query: strings.Repeat("a", 100)}},
		{
			name:      "search too long",
			input:     &SearchRequest{Query: strings.Repeat("a", 101)},
			wantField: "q",
			wantTag:   "max",
			wantMsg:   "q must be at most 100 characters",
		},
		{name: "valid pwsid", input: &SystemRequest{PWSID: "CA1910067"}},
		{name: "lowercase pwsid", input: &SystemRequest{PWSID: "ca1910067"}},
		{
			name:      "missing pwsid",
			input:     &SystemRequest{},
			wantField: "pwsid",
			wantTag:   "required",
			wantMsg:   "pwsid is required",
		},
		{
			name:      "pwsid too short",
			input:     &SystemRequest{PWSID: "C"},
			wantField: "pwsid",
			wantTag:   "pwsid",
			wantMsg:   "pwsid must be 2 to 16 letters or digits",
		},
		{
			name:      "pwsid too long",
			input:     &SystemRequest{PWSID: "CA12345678901234X"},
			wantField: "pwsid",
			wantTag:   "pwsid",
		},
		{
			name:      "pwsid with punctuation",
			input:     &SystemRequest{PWSID: "CA19-10067"},
			wantField: "pwsid",
			wantTag:   "pwsid",
		},
		{
			name:      "pwsid with regex",
			input:     &SystemRequest{PWSID: ".*"},
			wantField: "pwsid",
			wantTag:   "pwsid",
		},
		{name: "county", input: &CountyRequest{Name: "Los Angeles"}},
		{
			name:      "missing county",
			input:     &CountyRequest{},
			wantField: "name",
			wantTag:   "required",
			wantMsg:   "name is required",
		},
		{
			name:      "county too long",
			input:     &CountyRequest{Name: strings.Repeat("x", 101)},
			wantField: "name",
			wantTag:   "max",
		},
		{name: "summary bounds", input: &SummaryRequest{Limit: 100, Months: 240}},
		{name: "summary minimum", input: &SummaryRequest{Limit: 1, Months: 1}},
		{
			name:      "limit zero",
			input:     &SummaryRequest{Limit: 0, Months: 12},
			wantField: "limit",
			wantTag:   "min",
			wantMsg:   "limit must be at least 1",
		},
		{
			name:      "months too large",
			input:     &SummaryRequest{Limit: 10, Months: 241},
			wantField: "months",
			wantTag:   "max",
			wantMsg:   "months must be at most 240",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if errs[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.wantTag)
			}
			if tt.wantMsg != "" && verr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", verr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&SummaryRequest{Limit: 0, Months: 0})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Errors()))
	}
	want := "limit must be at least 1; months must be at least 1"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
}

func TestNewFieldError(t *testing.T) {
	t.Parallel()

	verr := NewFieldError("limit", "integer", "limit must be an integer")
	if verr.Error() != "limit must be an integer" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.Errors()[0].Field != "limit" {
		t.Errorf("Field = %q", verr.Errors()[0].Field)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	var verr RequestValidationError
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestNormalizePWSID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"ca1910067":     "CA1910067",
		"  CA1910067  ": "CA1910067",
		"":              "",
	}
	for in, want := range tests {
		if got := NormalizePWSID(in); got != want {
			t.Errorf("NormalizePWSID(%q) = %q, want %q", in, got, want)
		}
	}
}
