package models

import (
	"fmt"
	"time"
)

// All dates shown to templates are rendered in a fixed UTC+8 offset,
// independent of the viewer's local zone.
var zoneUTC8 = time.FixedZone("UTC+8", 8*60*60)

const (
	layoutMinute = "2006-01-02 15:04"
	layoutSecond = "2006-01-02 15:04:05"
)

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseAPITime parses any timestamp layout the HTB API is known to
// emit. Offset-less layouts are read as UTC+8, matching how FormatUTC8
// wrote them, so a format/parse round trip is stable. An empty or
// unparseable value yields the zero time.
func ParseAPITime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range apiTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, zoneUTC8); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatUTC8 renders t as "YYYY-MM-DD HH:mm" in UTC+8, or "" for the
// zero time.
func FormatUTC8(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(zoneUTC8).Format(layoutMinute)
}

// FormatUTC8Seconds is FormatUTC8 with a seconds component, used for
// generation timestamps.
func FormatUTC8Seconds(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(zoneUTC8).Format(layoutSecond)
}

// BloodDuration renders the elapsed time between release and the first
// solve as "{days}D {hours}H {minutes}M". Either endpoint missing
// yields "".
func BloodDuration(release, solve time.Time) string {
	if release.IsZero() || solve.IsZero() {
		return ""
	}
	d := solve.Sub(release)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dD %dH %dM", days, hours, minutes)
}
