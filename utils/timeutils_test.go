package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIso8601Now(t *testing.T) {
	before := time.Now().UTC().Add(-1 * time.Second)
	result := Iso8601Now()
	after := time.Now().UTC().Add(1 * time.Second)

	parsed, err := time.Parse(time.RFC3339, result)
	require.NoError(t, err)
	assert.False(t, parsed.Before(before) || parsed.After(after), "timestamp %v outside [%v, %v]", parsed, before, after)
}

func TestToFixedOffsetISO(t *testing.T) {
	base := time.Date(2025, 8, 14, 20, 30, 15, 0, time.UTC)

	tests := []struct {
		name     string
		offset   int
		expected string
	}{
		{name: "sgt crosses midnight", offset: 480, expected: "2025-08-15T04:30:15+08:00"},
		{name: "utc", offset: 0, expected: "2025-08-14T20:30:15+00:00"},
		{name: "negative offset", offset: -330, expected: "2025-08-14T15:00:15-05:30"},
		{name: "half hour offset", offset: 330, expected: "2025-08-15T02:00:15+05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFixedOffsetISO(&base, tt.offset)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestToFixedOffsetISONil(t *testing.T) {
	for _, offset := range []int{-600, 0, 480, 720} {
		assert.Nil(t, ToFixedOffsetISO(nil, offset))
	}
	assert.Nil(t, ToSGT(nil))
}

func TestToFixedOffsetISORoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 14, 3, 23, 45, 0, time.FixedZone("x", -7*3600)),
	}
	for _, in := range instants {
		s := ToSGT(&in)
		require.NotNil(t, s)
		parsed, err := time.Parse(time.RFC3339, *s)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(in), "%s parsed back as %v, want %v", *s, parsed, in)

		shifted := in.Add(SGTOffsetMinutes * time.Minute).Add(-SGTOffsetMinutes * time.Minute)
		assert.True(t, shifted.Equal(in))
	}
}

func TestMinutesOfDay(t *testing.T) {
	// 21:00 UTC is 05:00 the next day at UTC+8
	assert.Equal(t, 300, MinutesOfDay(time.Date(2025, 1, 1, 21, 0, 0, 0, time.UTC), SGTOffsetMinutes))
	assert.Equal(t, 0, MinutesOfDay(time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC), SGTOffsetMinutes))
	assert.Equal(t, 1439, MinutesOfDay(time.Date(2025, 1, 1, 15, 59, 30, 0, time.UTC), SGTOffsetMinutes))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-08-14", FormatDate(d))

	for _, bad := range []string{"", "2025-8-14", "14-08-2025", "2025-08-14T00:00:00", "2025-13-01"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
