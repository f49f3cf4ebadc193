// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeViolation(t *testing.T, doc bson.M) ViolationRecord {
	t.Helper()
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var rec ViolationRecord
	if err := bson.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return rec
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		present   bool
		valid     bool
		wantYear  int
		wantMonth time.Month
	}{
		{"empty", "", false, false, 0, 0},
		{"whitespace", "   ", true, false, 0, 0},
		{"date only", "2023-01-01", true, true, 2023, time.January},
		{"rfc3339", "2022-07-15T00:00:00Z", true, true, 2022, time.July},
		{"space separated", "2021-03-04 10:11:12", true, true, 2021, time.March},
		{"us format is malformed", "01/02/2023", true, false, 0, 0},
		{"garbage", "not a date", true, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := ParseDate(tt.input)
			if d.Present != tt.present || d.Valid != tt.valid {
				t.Fatalf("ParseDate(%q) present=%v valid=%v, want %v/%v", tt.input, d.Present, d.Valid, tt.present, tt.valid)
			}
			if tt.valid && (d.Time.Year() != tt.wantYear || d.Time.Month() != tt.wantMonth) {
				t.Errorf("ParseDate(%q) = %v", tt.input, d.Time)
			}
			if d.Malformed() != (tt.present && !tt.valid) {
				t.Errorf("Malformed() = %v", d.Malformed())
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":       "",
		" 02 ":   "2",
		"2":      "2",
		"2.0":    "2",
		"2.5":    "2.5",
		"PB90":   "PB90",
		"  71 ":  "71",
		"5000":   "5000",
		"-3":     "-3",
		"1A":     "1A",
		"0":      "0",
		"000123": "123",
	}
	for in, want := range tests {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestViolationRecordDecoding(t *testing.T) {
	t.Parallel()

	when := time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)
	rec := decodeViolation(t, bson.M{
		"PWSID":                        "GA0010000",
		"VIOLATION_ID":                 int32(1234),
		"VIOLATION_CODE":               "02",
		"CONTAMINANT_CODE":             int64(1040),
		"COMPL_PER_BEGIN_DATE":         when,
		"COMPL_PER_END_DATE":           "",
		"NON_COMPL_PER_BEGIN_DATE":     "2023-05-06",
		"NON_COMPL_PER_END_DATE":       nil,
		"VIOLATION_STATUS":             "Unaddressed",
		"IS_HEALTH_BASED_IND":          "Y",
		"ENFORCEMENT_ACTION_TYPE_CODE": nil,
		"ENFORCEMENT_DATE":             int32(5),
	})

	if rec.ViolationID != "1234" {
		t.Errorf("ViolationID = %q, want 1234", rec.ViolationID)
	}
	if rec.ViolationCode != "2" {
		t.Errorf("ViolationCode = %q, want 2", rec.ViolationCode)
	}
	if rec.ContaminantCode != "1040" {
		t.Errorf("ContaminantCode = %q, want 1040", rec.ContaminantCode)
	}
	if !rec.ComplianceBegin.Valid || !rec.ComplianceBegin.Time.Equal(when) {
		t.Errorf("ComplianceBegin = %+v", rec.ComplianceBegin)
	}
	if !rec.ComplianceEnd.IsNull() {
		t.Errorf("empty string end date should be null, got %+v", rec.ComplianceEnd)
	}
	if !rec.NonComplianceBegin.Valid {
		t.Errorf("NonComplianceBegin should parse, got %+v", rec.NonComplianceBegin)
	}
	if !rec.NonComplianceEnd.IsNull() {
		t.Errorf("null end date should be null, got %+v", rec.NonComplianceEnd)
	}
	if !rec.EnforcementActionType.IsEmpty() {
		t.Errorf("EnforcementActionType = %q, want empty", rec.EnforcementActionType)
	}
	if !rec.EnforcementDate.Malformed() {
		t.Errorf("integer enforcement date should be malformed, got %+v", rec.EnforcementDate)
	}
}

func TestWaterSystemPopulationCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value interface{}
		want  Count
	}{
		{"int32", int32(1200), Count{Value: 1200, Valid: true}},
		{"int64", int64(98000), Count{Value: 98000, Valid: true}},
		{"double", 450.9, Count{Value: 450, Valid: true}},
		{"string", "75", Count{Value: 75, Valid: true}},
		{"padded string", " 75 ", Count{}},
		{"negative", int32(-4), Count{}},
		{"garbage", "lots", Count{}},
		{"null", nil, Count{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := bson.Marshal(bson.M{"PWSID": "GA1", "POPULATION_SERVED_COUNT": tt.value})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var ws WaterSystem
			if err := bson.Unmarshal(data, &ws); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ws.Population != tt.want {
				t.Errorf("Population = %+v, want %+v", ws.Population, tt.want)
			}
		})
	}
}

func TestWaterSystemDisplayName(t *testing.T) {
	t.Parallel()

	if got := (WaterSystem{Name: "  "}).DisplayName(); got != UnknownSystemName {
		t.Errorf("DisplayName() = %q, want %q", got, UnknownSystemName)
	}
	if got := (WaterSystem{Name: "Atlanta"}).DisplayName(); got != "Atlanta" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		A Date  `json:"a"`
		B Date  `json:"b"`
		C Date  `json:"c"`
		N Count `json:"n"`
	}
	out, err := json.Marshal(wrapper{
		A: DateOf(time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC)),
		B: ParseDate("13/13/13"),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"a":"2020-02-03","b":"13/13/13","c":null,"n":null}`
	if string(out) != want {
		t.Errorf("json = %s, want %s", out, want)
	}
}

func TestDateAfter(t *testing.T) {
	t.Parallel()

	older := ParseDate("2020-01-01")
	newer := ParseDate("2021-01-01")
	if !newer.After(older) || older.After(newer) {
		t.Error("expected newer after older")
	}
	if !older.After(Date{}) {
		t.Error("valid date should be after null")
	}
	if (Date{}).After(older) {
		t.Error("null date should never be after a valid one")
	}
}

func TestViolationFilterString(t *testing.T) {
	t.Parallel()

	if FilterHealthBasedActive.String() != "health_based_active" {
		t.Errorf("String() = %q", FilterHealthBasedActive.String())
	}
	if ViolationFilter(99).String() != "unknown" {
		t.Errorf("String() = %q", ViolationFilter(99).String())
	}
}
