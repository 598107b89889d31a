// internal/reports/reports.go
//
// Pure derivations over application lists: histograms, totals and search
// predicates the dashboard renders. Everything here is recomputed per call;
// the lists involved are small and nothing justifies caching.
package reports

import (
	"strings"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

type Stats struct {
	Total          int   `json:"total"`
	Pending        int   `json:"pending"`
	Approved       int   `json:"approved"`
	Declined       int   `json:"declined"`
	TotalAmount    int64 `json:"total_amount"`
	PendingAmount  int64 `json:"pending_amount"`
	ApprovedAmount int64 `json:"approved_amount"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ComputeStats derives the dashboard counters from a list of applications.
func ComputeStats(apps []models.LoanApplication) Stats {
	var s Stats
	s.Total = len(apps)
	for _, app := range apps {
		s.TotalAmount += app.Amount
		switch app.Status {
		case models.ApplicationStatusPending:
			s.Pending++
			s.PendingAmount += app.Amount
		case models.ApplicationStatusApproved:
			s.Approved++
			s.ApprovedAmount += app.Amount
		case models.ApplicationStatusDeclined:
			s.Declined++
		}
	}
	return s
}

// StatusHistogram counts applications per status value.
func StatusHistogram(apps []models.LoanApplication) map[models.ApplicationStatus]int {
	hist := map[models.ApplicationStatus]int{
		models.ApplicationStatusPending:  0,
		models.ApplicationStatusApproved: 0,
		models.ApplicationStatusDeclined: 0,
	}
	for _, app := range apps {
		hist[app.Status]++
	}
	return hist
}

// TypeHistogram counts applications per distinct loan-type label.
func TypeHistogram(apps []models.LoanApplication) []ChartPoint {
	counts := make(map[string]int)
	var order []string
	for _, app := range apps {
		if _, seen := counts[app.LoanType]; !seen {
			order = append(order, app.LoanType)
		}
		counts[app.LoanType]++
	}

	points := make([]ChartPoint, 0, len(order))
	for _, name := range order {
		points = append(points, ChartPoint{Name: name, Value: counts[name]})
	}
	return points
}

// MatchesSearch reports whether an application matches a free-text search
// term: case-insensitive substring over name, email and loan type, plain
// substring over phone. An empty term matches everything.
func MatchesSearch(app models.LoanApplication, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(app.ApplicantName), lower) ||
		strings.Contains(strings.ToLower(app.Email), lower) ||
		strings.Contains(strings.ToLower(app.LoanType), lower) ||
		strings.Contains(app.Phone, term)
}

// Filter applies search and status filters with AND semantics. A status of
// "all" (or empty) disables the status filter.
func Filter(apps []models.LoanApplication, term, status string) []models.LoanApplication {
	filtered := make([]models.LoanApplication, 0, len(apps))
	for _, app := range apps {
		if !MatchesSearch(app, term) {
			continue
		}
		if status != "" && status != "all" && string(app.Status) != status {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}
