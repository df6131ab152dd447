package model

import (
	"bytes"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is a record timestamp. Values that do not parse decode to the
// zero time instead of failing the whole record.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	ts.Time = time.Time{}
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
	case b[0] == '"':
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &s); err != nil {
			return nil
		}
		ts.Time = ParseTimestamp(s)
	default:
		// epoch milliseconds
		if ms, err := strconv.ParseFloat(string(b), 64); err == nil {
			ts.Time = time.UnixMilli(int64(ms)).UTC()
		}
	}
	return nil
}

// ParseTimestamp accepts RFC 3339 and its date-only and offset-less forms.
// Date-only values are UTC, offset-less date-times are local. Anything else
// yields the zero time.
func ParseTimestamp(s string) time.Time {
	for i, layout := range dateLayouts {
		loc := time.Local
		if i == len(dateLayouts)-1 {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
