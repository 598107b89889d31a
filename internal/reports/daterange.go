// internal/reports/daterange.go
package reports

import (
	"time"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

// DayFormat is the calendar-day wire format used by the date filters.
const DayFormat = "2006-01-02"

// Predefined period keys the dashboard's date filter offers.
const (
	PeriodToday       = "today"
	PeriodThisWeek    = "this_week"
	PeriodThisMonth   = "this_month"
	PeriodLastMonth   = "last_month"
	PeriodLast3Months = "last_3_months"
	PeriodLast6Months = "last_6_months"
	PeriodThisYear    = "this_year"
)

// InRange reports whether a creation timestamp falls inside the closed
// calendar-day range [from, to], evaluated in the timestamp's location.
// Malformed bounds exclude nothing on that side.
func InRange(createdAt time.Time, from, to string) bool {
	day := createdAt.Format(DayFormat)
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}

// ResolvePeriod turns a predefined period key into a concrete [from, to]
// pair using the supplied wall-clock time. The result is fixed at the moment
// of the call; it is not re-derived as time passes.
func ResolvePeriod(key string, now time.Time) (from, to string, ok bool) {
	year, month, _ := now.Date()
	loc := now.Location()

	switch key {
	case PeriodToday:
		day := now.Format(DayFormat)
		return day, day, true
	case PeriodThisWeek:
		// Sunday through Saturday of the current week.
		start := now.AddDate(0, 0, -int(now.Weekday()))
		end := start.AddDate(0, 0, 6)
		return start.Format(DayFormat), end.Format(DayFormat), true
	case PeriodThisMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, -1)
		return start.Format(DayFormat), end.Format(DayFormat), true
	case PeriodLastMonth:
		start := time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
		return start.Format(DayFormat), end.Format(DayFormat), true
	case PeriodLast3Months:
		start := time.Date(year, month-3, 1, 0, 0, 0, 0, loc)
		return start.Format(DayFormat), now.Format(DayFormat), true
	case PeriodLast6Months:
		start := time.Date(year, month-6, 1, 0, 0, 0, 0, loc)
		return start.Format(DayFormat), now.Format(DayFormat), true
	case PeriodThisYear:
		start := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
		return start.Format(DayFormat), now.Format(DayFormat), true
	}
	return "", "", false
}

// FilterByDate keeps the applications whose creation day lies inside the
// closed [from, to] range. Empty bounds are open on that side.
func FilterByDate(apps []models.LoanApplication, from, to string) []models.LoanApplication {
	filtered := make([]models.LoanApplication, 0, len(apps))
	for _, app := range apps {
		if InRange(app.CreatedAt, from, to) {
			filtered = append(filtered, app)
		}
	}
	return filtered
}
