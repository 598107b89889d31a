// internal/services/notification_service_test.go
package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

func TestComposeWhatsAppLink(t *testing.T) {
	svc := NewNotificationService(testConfig())

	company := &models.Company{Name: "Acme Credit"}
	app := &models.LoanApplication{
		ApplicantName: "Mary Wanjiku",
		LoanType:      "Business Loan",
		Amount:        6000,
		PeriodMonths:  6,
	}

	link := svc.ComposeWhatsAppLink(company, app)
	require.True(t, strings.HasPrefix(link, "https://wa.me/254798993404?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "*New Loan Application*")
	assert.Contains(t, message, "*Company:* Acme Credit")
	assert.Contains(t, message, "*Applicant:* Mary Wanjiku")
	assert.Contains(t, message, "*Amount:* KES 6,000")
	assert.Contains(t, message, "*Period:* 6 months")
	assert.Contains(t, message, "Please check your dashboard")
}
