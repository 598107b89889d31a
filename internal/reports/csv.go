// internal/reports/csv.go
package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

var csvHeader = []string{"Name", "Phone", "Email", "Loan Type", "Amount", "Period", "Status", "Date"}

// WriteCSV streams the applications as a CSV export. Fields are quoted per
// RFC 4180, so names or notes containing commas round-trip correctly.
func WriteCSV(w io.Writer, apps []models.LoanApplication) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, app := range apps {
		record := []string{
			app.ApplicantName,
			app.Phone,
			app.Email,
			app.LoanType,
			strconv.FormatInt(app.Amount, 10),
			fmt.Sprintf("%d months", app.PeriodMonths),
			string(app.Status),
			app.CreatedAt.Format("1/2/2006"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
