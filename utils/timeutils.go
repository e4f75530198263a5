package utils

import (
	"fmt"
	"time"
)

// SGTOffsetMinutes is the fixed UTC+8 offset used for every civil timestamp
// the service produces.
const SGTOffsetMinutes = 480

// DateLayout is the calendar date format accepted in queries and sent to the
// flight data provider.
const DateLayout = "2006-01-02"

const civilLayout = "2006-01-02T15:04:05"

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ToFixedOffsetISO shifts t by offsetMinutes and formats it as
// YYYY-MM-DDTHH:MM:SS±HH:MM with the offset appended literally.
// No timezone database is consulted. A nil instant yields nil.
func ToFixedOffsetISO(t *time.Time, offsetMinutes int) *string {
	if t == nil {
		return nil
	}
	shifted := t.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	sign := '+'
	abs := offsetMinutes
	if offsetMinutes < 0 {
		sign = '-'
		abs = -offsetMinutes
	}
	s := fmt.Sprintf("%s%c%02d:%02d", shifted.Format(civilLayout), sign, abs/60, abs%60)
	return &s
}

// ToSGT formats t in fixed UTC+8 civil time.
func ToSGT(t *time.Time) *string {
	return ToFixedOffsetISO(t, SGTOffsetMinutes)
}

// MinutesOfDay returns the minute of the day of t in the fixed-offset civil
// time, in [0, 1440).
func MinutesOfDay(t time.Time, offsetMinutes int) int {
	shifted := t.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	return shifted.Hour()*60 + shifted.Minute()
}

// ParseDate parses a strict YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q is not YYYY-MM-DD", s)
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// FormatDate renders the calendar date of t (in UTC).
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
