package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 14}, d)

	_, err = ParseDate("14-03-2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestFromTimeUTCMidnight(t *testing.T) {
	// Date columns come back as UTC midnight regardless of server zone.
	stamp := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, zone := range []*time.Location{
		time.FixedZone("UTC+8", 8*3600),
		time.FixedZone("UTC-10", -10*3600),
	} {
		d := FromTime(stamp.In(zone))
		assert.Equal(t, MustParse("2025-06-01"), d, "zone %s", zone)
	}
}

func TestFromTimeWallClock(t *testing.T) {
	// A real timestamp keeps its own wall-clock date.
	zone := time.FixedZone("UTC+8", 8*3600)
	stamp := time.Date(2025, time.June, 1, 23, 30, 0, 0, zone)
	assert.Equal(t, MustParse("2025-06-01"), FromTime(stamp))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-01-01", "2024-01-01", 1},
		{"five days", "2024-01-01", "2024-01-05", 5},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"end before start", "2024-01-05", "2024-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(MustParse(tt.start), MustParse(tt.end)))
		})
	}
}

func TestOrderingAndRange(t *testing.T) {
	a := MustParse("2025-01-15")
	b := MustParse("2025-02-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(a))

	assert.True(t, MustParse("2025-01-20").InRange(a, b))
	assert.True(t, a.InRange(a, b))
	assert.True(t, b.InRange(a, b))
	assert.False(t, MustParse("2025-02-02").InRange(a, b))
}

func TestAddDays(t *testing.T) {
	d := MustParse("2024-02-28")
	assert.Equal(t, MustParse("2024-02-29"), d.AddDays(1))
	assert.Equal(t, MustParse("2024-03-01"), d.AddDays(2))
	assert.Equal(t, MustParse("2024-02-27"), d.AddDays(-1))
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-12-25")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-25"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`20251225`), &parsed))
}
