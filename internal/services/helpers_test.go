// internal/services/helpers_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loanpesa/loanpesa-backend/internal/config"
	"github.com/loanpesa/loanpesa-backend/internal/database"
	"github.com/loanpesa/loanpesa-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.RunMigrations(db), "run migrations")
	return db
}

func newUUID() uuid.UUID {
	return uuid.New()
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Notify: config.NotifyConfig{
			WhatsAppNumber: "254798993404",
		},
		Public: config.PublicConfig{
			BaseURL: "https://app.loanpesa.test",
		},
	}
}

// createTestCompany seeds a company; configured companies get a populated
// loan catalog so their public form is live.
func createTestCompany(t *testing.T, db *gorm.DB, configured bool) *models.Company {
	t.Helper()

	company := &models.Company{
		Name:            "Acme Credit",
		BrandColor:      models.DefaultBrandColor,
		BrandColorLight: models.DefaultBrandColorLight,
		LoanTypes:       models.StringList{},
		LoanPeriods:     models.IntList{},
	}
	if configured {
		company.LoanTypes = models.StringList{"Business Loan", "Emergency Loan"}
		company.LoanPeriods = models.IntList{3, 6, 12}
	}
	company.RecomputeSettingsCompleted()
	require.NoError(t, db.Create(company).Error)
	return company
}

func submitTestApplication(t *testing.T, svc *ApplicationService, companyID uuid.UUID) *models.LoanApplication {
	t.Helper()

	app, err := svc.Submit(companyID, &SubmitRequest{
		ApplicantName: "Mary Wanjiku",
		Email:         "mary@example.com",
		Phone:         "+254 700 111222",
		LoanType:      "Business Loan",
		Amount:        "6,000",
		PeriodMonths:  6,
	})
	require.NoError(t, err)
	return app
}
