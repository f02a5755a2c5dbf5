package domain

import (
	"strings"
	"time"
)

type Type string

const (
	TypeWork       Type = "work"
	TypeShortBreak Type = "short_break"
	TypeLongBreak  Type = "long_break"
)

var defaultMinutes = map[Type]int{
	TypeWork:       25,
	TypeShortBreak: 5,
	TypeLongBreak:  15,
}

// DefaultMinutes returns the fixed duration for the built-in session types.
func DefaultMinutes(t Type) (int, bool) {
	m, ok := defaultMinutes[t]
	return m, ok
}

// IsBreak reports whether the label counts as a break. Any label containing
// "break" qualifies, custom ones included.
func (t Type) IsBreak() bool {
	return strings.Contains(string(t), "break")
}

func (t Type) IsWork() bool {
	return t == TypeWork
}

// Record is one finished or interrupted session as written to the log.
type Record struct {
	Timestamp     time.Time
	Type          Type
	Duration      int
	Completed     bool
	SessionNumber int

	// RawTimestamp is the timestamp text as read from storage. It is written
	// back unchanged so rewriting the log never alters existing entries.
	// Timestamp is zero when RawTimestamp could not be parsed.
	RawTimestamp string
}

// TimestampText is the stored form of the timestamp.
func (r Record) TimestampText() string {
	if r.RawTimestamp != "" {
		return r.RawTimestamp
	}
	return r.Timestamp.UTC().Format(time.RFC3339Nano)
}

// Offset-less forms are what naive ISO-8601 writers produce; they are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts RFC 3339 and the common ISO-8601 forms without an offset.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// IndexedRecord pairs a record with its position in the log.
type IndexedRecord struct {
	Position int
	Record   Record
}

type LoadStatus string

const (
	LoadOK      LoadStatus = "ok"
	LoadMissing LoadStatus = "missing"
	LoadCorrupt LoadStatus = "corrupt"
)

// LoadResult separates an empty log from one that could not be read.
// Records is empty unless Status is LoadOK.
type LoadResult struct {
	Records []Record
	Status  LoadStatus
	Err     error
}
