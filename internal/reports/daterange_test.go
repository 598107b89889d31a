// internal/reports/daterange_test.go
package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A fixed clock: Friday 2026-08-14.
var fixedNow = time.Date(2026, 8, 14, 11, 30, 0, 0, time.UTC)

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		key  string
		from string
		to   string
	}{
		{PeriodToday, "2026-08-14", "2026-08-14"},
		// Weeks run Sunday through Saturday
		{PeriodThisWeek, "2026-08-09", "2026-08-15"},
		{PeriodThisMonth, "2026-08-01", "2026-08-31"},
		{PeriodLastMonth, "2026-07-01", "2026-07-31"},
		{PeriodLast3Months, "2026-05-01", "2026-08-14"},
		{PeriodLast6Months, "2026-02-01", "2026-08-14"},
		{PeriodThisYear, "2026-01-01", "2026-08-14"},
	}

	for _, tc := range cases {
		from, to, ok := ResolvePeriod(tc.key, fixedNow)
		assert.True(t, ok, "key %q", tc.key)
		assert.Equal(t, tc.from, from, "key %q", tc.key)
		assert.Equal(t, tc.to, to, "key %q", tc.key)
	}
}

func TestResolvePeriodUnknownKey(t *testing.T) {
	_, _, ok := ResolvePeriod("fortnight", fixedNow)
	assert.False(t, ok)
}

func TestResolvePeriodLastMonthAcrossYearBoundary(t *testing.T) {
	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	from, to, ok := ResolvePeriod(PeriodLastMonth, january)
	assert.True(t, ok)
	assert.Equal(t, "2025-12-01", from)
	assert.Equal(t, "2025-12-31", to)
}

func TestInRange(t *testing.T) {
	ts := time.Date(2026, 8, 14, 23, 59, 0, 0, time.UTC)

	assert.True(t, InRange(ts, "2026-08-14", "2026-08-14"))
	assert.True(t, InRange(ts, "", ""))
	assert.True(t, InRange(ts, "2026-08-01", ""))
	assert.False(t, InRange(ts, "2026-08-15", ""))
	assert.False(t, InRange(ts, "", "2026-08-13"))
}
