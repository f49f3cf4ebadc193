// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// dateLayouts are the textual date forms accepted from SDWIS exports.
// They are the forms MongoDB's $convert to date also understands, so a
// string that parses here is a date to the store as well.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateOutputLayout is used when a valid date is written back out as JSON.
const dateOutputLayout = "2006-01-02"

// Date is a nullable date read from the record store.
//
// Source rows carry BSON datetimes, ISO strings, empty strings, or nothing.
// Present reports that some non-empty value was supplied; Valid reports that
// it could be interpreted as a date. Present && !Valid is a malformed date.
type Date struct {
	Time    time.Time
	Raw     string
	Present bool
	Valid   bool
}

// DateOf wraps a known time.
func DateOf(t time.Time) Date {
	return Date{Time: t.UTC(), Present: true, Valid: true}
}

// ParseDate interprets a textual date. Only the empty string is null; text
// is matched as stored, so padded values are malformed just as they are to
// the store.
func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC(), Raw: s, Present: true, Valid: true}
		}
	}
	return Date{Raw: s, Present: true}
}

// IsNull reports whether no value was supplied.
func (d Date) IsNull() bool { return !d.Present }

// Malformed reports whether a value was supplied but is not a date.
func (d Date) Malformed() bool { return d.Present && !d.Valid }

// After reports whether d is a valid date later than other. Invalid dates
// are never after anything, and any valid date is after an invalid one.
func (d Date) After(other Date) bool {
	if !d.Valid {
		return false
	}
	if !other.Valid {
		return true
	}
	return d.Time.After(other.Time)
}

// Key returns a stable textual form used in composite keys.
func (d Date) Key() string {
	switch {
	case d.Valid:
		return d.Time.Format(time.RFC3339)
	case d.Present:
		return "raw:" + d.Raw
	default:
		return ""
	}
}

// UnmarshalBSONValue never fails: unsupported BSON types become malformed dates.
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*d = Date{}
	case bsontype.DateTime:
		if tm, ok := raw.TimeOK(); ok {
			*d = DateOf(tm)
		} else {
			*d = Date{Present: true}
		}
	case bsontype.String:
		s, _ := raw.StringValueOK()
		*d = ParseDate(s)
	default:
		*d = Date{Raw: raw.String(), Present: true}
	}
	return nil
}

// MarshalJSON writes valid dates as YYYY-MM-DD, malformed ones verbatim, and
// absent ones as null.
func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case d.Valid:
		return json.Marshal(d.Time.Format(dateOutputLayout))
	case d.Present:
		return json.Marshal(d.Raw)
	default:
		return []byte("null"), nil
	}
}

// Text is a free-text field. Numbers and booleans are kept in textual form;
// null, missing, and unsupported types become the empty string.
type Text string

// String returns the trimmed text.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// IsEmpty reports whether the text is absent or blank.
func (t Text) IsEmpty() bool { return t.String() == "" }

// UnmarshalBSONValue coerces scalar BSON values to text.
func (t *Text) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	*t = Text(scalarText(bson.RawValue{Type: bt, Value: data}))
	return nil
}

// Code is a categorical code stored in normalized form (see NormalizeCode).
type Code string

// UnmarshalBSONValue coerces scalar BSON values and normalizes them.
func (c *Code) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	*c = Code(NormalizeCode(scalarText(bson.RawValue{Type: bt, Value: data})))
	return nil
}

// String returns the normalized code.
func (c Code) String() string { return string(c) }

// NormalizeCode trims a code and rewrites integral numbers in canonical
// decimal form so that "02", "2" and "2.0" compare equal.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// Count is a nullable non-negative integer such as population served.
type Count struct {
	Value int64
	Valid bool
}

// CountOf wraps n, treating negative values as absent.
func CountOf(n int64) Count {
	if n < 0 {
		return Count{}
	}
	return Count{Value: n, Valid: true}
}

// Or returns the value, or def when absent.
func (c Count) Or(def int64) int64 {
	if !c.Valid {
		return def
	}
	return c.Value
}

// UnmarshalBSONValue accepts integers, doubles (truncated), and decimal
// integer strings. Anything else is absent.
func (c *Count) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.Int32:
		v, _ := raw.Int32OK()
		*c = CountOf(int64(v))
	case bsontype.Int64:
		v, _ := raw.Int64OK()
		*c = CountOf(v)
	case bsontype.Double:
		v, _ := raw.DoubleOK()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			*c = Count{}
			return nil
		}
		*c = CountOf(int64(v))
	case bsontype.String:
		s, _ := raw.StringValueOK()
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*c = CountOf(n)
		} else {
			*c = Count{}
		}
	default:
		*c = Count{}
	}
	return nil
}

// MarshalJSON writes the number or null.
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(c.Value, 10)), nil
}

func scalarText(raw bson.RawValue) string {
	switch raw.Type {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		return s
	case bsontype.Int32:
		v, _ := raw.Int32OK()
		return strconv.FormatInt(int64(v), 10)
	case bsontype.Int64:
		v, _ := raw.Int64OK()
		return strconv.FormatInt(v, 10)
	case bsontype.Double:
		v, _ := raw.DoubleOK()
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bsontype.Boolean:
		v, _ := raw.BooleanOK()
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
