// internal/services/notification_service.go
package services

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/loanpesa/loanpesa-backend/internal/config"
	"github.com/loanpesa/loanpesa-backend/internal/models"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

// NotificationService composes the WhatsApp deep link the public form opens
// after a submission. The server never delivers anything itself; the link is
// handed back to the client fire-and-forget, with no confirmation or retry.
type NotificationService struct {
	cfg *config.Config
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{cfg: cfg}
}

// ComposeWhatsAppLink renders the operator notification for a new
// application. The contact is a single operator number from config,
// deliberately not per tenant.
func (s *NotificationService) ComposeWhatsAppLink(company *models.Company, app *models.LoanApplication) string {
	message := fmt.Sprintf(
		"🔔 *New Loan Application*\n\n"+
			"*Company:* %s\n"+
			"*Applicant:* %s\n"+
			"*Amount:* KES %s\n"+
			"*Type:* %s\n"+
			"*Period:* %d months\n\n"+
			"Please check your dashboard to review this application.",
		company.Name,
		app.ApplicantName,
		utils.FormatAmount(app.Amount),
		app.LoanType,
		app.PeriodMonths,
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.Notify.WhatsAppNumber, url.QueryEscape(message))
}

// NotifyNewApplication logs the submission for the operator audit trail.
func (s *NotificationService) NotifyNewApplication(company *models.Company, app *models.LoanApplication) {
	logrus.WithFields(logrus.Fields{
		"company_id":     company.ID,
		"application_id": app.ID,
		"reference":      app.Reference,
		"loan_type":      app.LoanType,
		"amount":         app.Amount,
	}).Info("New application received")
}
