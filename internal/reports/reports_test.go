// internal/reports/reports_test.go
package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

func app(name, email, phone, loanType string, amount int64, status models.ApplicationStatus) models.LoanApplication {
	return models.LoanApplication{
		ApplicantName: name,
		Email:         email,
		Phone:         phone,
		LoanType:      loanType,
		Amount:        amount,
		PeriodMonths:  6,
		Status:        status,
	}
}

func sampleApps() []models.LoanApplication {
	return []models.LoanApplication{
		app("Mary Wanjiku", "mary@example.com", "+254 700 111222", "Business Loan", 6000, models.ApplicationStatusPending),
		app("John Otieno", "john@example.com", "0722 333444", "Emergency Loan", 2500, models.ApplicationStatusApproved),
		app("Grace Achieng", "grace@example.com", "0733 555666", "Business Loan", 10000, models.ApplicationStatusDeclined),
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleApps())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, int64(18500), stats.TotalAmount)
	assert.Equal(t, int64(6000), stats.PendingAmount)
	assert.Equal(t, int64(2500), stats.ApprovedAmount)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, int64(0), stats.TotalAmount)
}

func TestStatusHistogramIncludesEmptyBuckets(t *testing.T) {
	hist := StatusHistogram([]models.LoanApplication{
		app("Mary", "m@x.com", "0700", "Business Loan", 100, models.ApplicationStatusPending),
	})

	// All three statuses are present even when their count is zero
	assert.Equal(t, 1, hist[models.ApplicationStatusPending])
	assert.Equal(t, 0, hist[models.ApplicationStatusApproved])
	assert.Equal(t, 0, hist[models.ApplicationStatusDeclined])
	assert.Len(t, hist, 3)
}

func TestTypeHistogramPreservesFirstSeenOrder(t *testing.T) {
	points := TypeHistogram(sampleApps())

	assert.Equal(t, []ChartPoint{
		{Name: "Business Loan", Value: 2},
		{Name: "Emergency Loan", Value: 1},
	}, points)
}

func TestMatchesSearch(t *testing.T) {
	a := app("Mary Wanjiku", "mary@example.com", "+254 700 111222", "Business Loan", 6000, models.ApplicationStatusPending)

	assert.True(t, MatchesSearch(a, ""))
	assert.True(t, MatchesSearch(a, "mary"))
	assert.True(t, MatchesSearch(a, "MARY"))
	assert.True(t, MatchesSearch(a, "example.com"))
	assert.True(t, MatchesSearch(a, "business"))
	assert.True(t, MatchesSearch(a, "700 111"))
	assert.False(t, MatchesSearch(a, "otieno"))
}

func TestFilterAndsSearchWithStatus(t *testing.T) {
	apps := sampleApps()

	// Search alone
	assert.Len(t, Filter(apps, "mary", "all"), 1)

	// Status alone; "all" and "" both disable the status filter
	assert.Len(t, Filter(apps, "", "pending"), 1)
	assert.Len(t, Filter(apps, "", "all"), 3)
	assert.Len(t, Filter(apps, "", ""), 3)

	// Both together must agree
	assert.Len(t, Filter(apps, "business", "declined"), 1)
	assert.Empty(t, Filter(apps, "mary", "approved"))
}

func TestFilterByDateInclusiveBounds(t *testing.T) {
	day := func(s string) models.LoanApplication {
		ts, _ := time.Parse(DayFormat, s)
		a := app("x", "x@x.com", "0700", "Business Loan", 100, models.ApplicationStatusPending)
		a.CreatedAt = ts
		return a
	}

	apps := []models.LoanApplication{day("2026-08-01"), day("2026-08-15"), day("2026-08-31")}

	// Both endpoints are inside the range
	assert.Len(t, FilterByDate(apps, "2026-08-01", "2026-08-31"), 3)
	assert.Len(t, FilterByDate(apps, "2026-08-02", "2026-08-31"), 2)
	assert.Len(t, FilterByDate(apps, "2026-08-01", "2026-08-14"), 1)

	// Open bounds
	assert.Len(t, FilterByDate(apps, "", "2026-08-15"), 2)
	assert.Len(t, FilterByDate(apps, "2026-08-15", ""), 2)
	assert.Len(t, FilterByDate(apps, "", ""), 3)
}
