// Package temporal normalizes the mixed timestamp text found in the snapshot
// exports into comparable instants. Parsing is lenient: a value that cannot be
// parsed becomes nil, never an error, so one bad cell cannot abort a run.
package temporal

import (
	"strings"
	"time"
)

// instantFormats are tried in order. Formats without an offset are
// interpreted as UTC.
var instantFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ParseInstant parses timestamp text into a UTC instant. Blank or
// unparseable input yields nil.
func ParseInstant(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range instantFormats {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

// ParseDate parses date text into a calendar date (midnight UTC).
// It accepts full timestamps and keeps only the date part.
func ParseDate(s string) *time.Time {
	t := ParseInstant(s)
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// ToLocal converts a UTC instant to wall-clock time in the named zone and
// strips the zone annotation (the result carries the local clock reading in
// the UTC location, so values from different zones compare as wall clocks).
// A blank zone name means defaultZone; an unrecognized zone name falls back
// to UTC. The fallback is per value because different rows carry different,
// sometimes invalid, zone names.
func ToLocal(t *time.Time, zoneName, defaultZone string) *time.Time {
	if t == nil {
		return nil
	}
	name := strings.TrimSpace(zoneName)
	if name == "" {
		name = strings.TrimSpace(defaultZone)
	}
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	w := time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond(), time.UTC)
	return &w
}
