// internal/handlers/public_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loanpesa/loanpesa-backend/internal/config"
	"github.com/loanpesa/loanpesa-backend/internal/database"
	"github.com/loanpesa/loanpesa-backend/internal/models"
	"github.com/loanpesa/loanpesa-backend/internal/services"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", suite.T().Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))
	suite.db = db

	cfg := &config.Config{
		Environment: "test",
		Notify:      config.NotifyConfig{WhatsAppNumber: "254798993404"},
		Public:      config.PublicConfig{BaseURL: "https://app.loanpesa.test"},
	}

	companyService := services.NewCompanyService(db, cfg)
	applicationService := services.NewApplicationService(db, companyService)
	notificationService := services.NewNotificationService(cfg)
	handler := NewPublicHandler(companyService, applicationService, notificationService)

	suite.router = gin.New()
	public := suite.router.Group("/v1/public")
	{
		public.GET("/apply/:companyId", handler.GetForm)
		public.POST("/apply/:companyId", handler.SubmitApplication)
	}
}

func (suite *PublicHandlerTestSuite) createCompany(configured bool) *models.Company {
	company := &models.Company{
		Name:            "Acme Credit",
		BrandColor:      "#2563eb",
		BrandColorLight: "#2563eb33",
		LoanTypes:       models.StringList{},
		LoanPeriods:     models.IntList{},
	}
	if configured {
		company.LoanTypes = models.StringList{"Business Loan"}
		company.LoanPeriods = models.IntList{3, 6}
	}
	company.RecomputeSettingsCompleted()
	suite.Require().NoError(suite.db.Create(company).Error)
	return company
}

func (suite *PublicHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PublicHandlerTestSuite) TestGetFormReturnsBranding() {
	company := suite.createCompany(true)

	req, _ := http.NewRequest("GET", "/v1/public/apply/"+company.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Company struct {
				Name        string   `json:"name"`
				BrandColor  string   `json:"brand_color"`
				LoanTypes   []string `json:"loan_types"`
				LoanPeriods []int    `json:"loan_periods"`
			} `json:"company"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Equal("Acme Credit", response.Data.Company.Name)
	suite.Equal("#2563eb", response.Data.Company.BrandColor)
	suite.Equal([]string{"Business Loan"}, response.Data.Company.LoanTypes)
	suite.Equal([]int{3, 6}, response.Data.Company.LoanPeriods)
}

func (suite *PublicHandlerTestSuite) TestGetFormGatedWhenIncomplete() {
	company := suite.createCompany(false)

	req, _ := http.NewRequest("GET", "/v1/public/apply/"+company.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PublicHandlerTestSuite) TestGetFormUnknownCompany() {
	req, _ := http.NewRequest("GET", "/v1/public/apply/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PublicHandlerTestSuite) TestSubmitApplication() {
	company := suite.createCompany(true)

	w := suite.postJSON("/v1/public/apply/"+company.ID.String(), gin.H{
		"applicant_name": "Mary Wanjiku",
		"email":          "mary@example.com",
		"phone":          "+254 700 111222",
		"loan_type":      "Business Loan",
		"amount":         "6,000",
		"period":         6,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Application struct {
				Status    string `json:"status"`
				Amount    int64  `json:"amount"`
				Reference string `json:"reference"`
			} `json:"application"`
			WhatsAppURL string `json:"whatsapp_url"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Equal("pending", response.Data.Application.Status)
	suite.Equal(int64(6000), response.Data.Application.Amount)
	suite.Len(response.Data.Application.Reference, 8)
	suite.Contains(response.Data.WhatsAppURL, "wa.me/254798993404")
}

func (suite *PublicHandlerTestSuite) TestSubmitRejectsOffCatalogLoanType() {
	company := suite.createCompany(true)

	w := suite.postJSON("/v1/public/apply/"+company.ID.String(), gin.H{
		"applicant_name": "Mary Wanjiku",
		"email":          "mary@example.com",
		"phone":          "+254 700 111222",
		"loan_type":      "Asset Finance",
		"amount":         "6,000",
		"period":         6,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PublicHandlerTestSuite) TestSubmitValidationFailure() {
	company := suite.createCompany(true)

	w := suite.postJSON("/v1/public/apply/"+company.ID.String(), gin.H{
		"applicant_name": "Mary Wanjiku",
		"email":          "not-an-email",
		"phone":          "+254 700 111222",
		"loan_type":      "Business Loan",
		"amount":         "6,000",
		"period":         6,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}
