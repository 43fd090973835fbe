package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month", day(2026, time.March, 15), 1, day(2026, time.April, 15)},
		{"twelve months", day(2026, time.March, 15), 12, day(2027, time.March, 15)},
		{"clamps into leap february", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"clamps into regular february", day(2025, time.January, 31), 1, day(2025, time.February, 28)},
		{"clamps thirty-one to thirty", day(2026, time.May, 31), 1, day(2026, time.June, 30)},
		{"year rollover", day(2026, time.December, 31), 2, day(2027, time.February, 28)},
		{"no clamp needed", day(2026, time.January, 30), 3, day(2026, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.January))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, time.August, 29, 14, 35, 12, 999, time.UTC)
	assert.Equal(t, day(2026, time.August, 29), DateOnly(ts))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, time.August, 29, 14, 35, 12, 0, time.UTC)
	assert.Equal(t, day(2026, time.August, 1), StartOfMonth(ts))
}
