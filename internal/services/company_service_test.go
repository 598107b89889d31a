// internal/services/company_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/loanpesa/loanpesa-backend/internal/models"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	svc *CompanyService
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	db := newTestDB(suite.T())
	suite.svc = NewCompanyService(db, testConfig())
}

func (suite *CompanyServiceTestSuite) TestSettingsCompletedTracksCatalogs() {
	company := createTestCompany(suite.T(), suite.svc.db, false)
	suite.False(company.SettingsCompleted)

	// A loan type alone is not enough
	company, err := suite.svc.AddLoanType(company.ID, "Business Loan")
	suite.Require().NoError(err)
	suite.False(company.SettingsCompleted)

	// Both catalogs populated completes the settings
	company, err = suite.svc.AddLoanPeriod(company.ID, 6)
	suite.Require().NoError(err)
	suite.True(company.SettingsCompleted)

	// Emptying either catalog reverts the flag
	company, err = suite.svc.RemoveLoanType(company.ID, "Business Loan")
	suite.Require().NoError(err)
	suite.False(company.SettingsCompleted)
}

func (suite *CompanyServiceTestSuite) TestAddLoanTypeRejectsDuplicates() {
	company := createTestCompany(suite.T(), suite.svc.db, true)

	_, err := suite.svc.AddLoanType(company.ID, "Business Loan")
	suite.ErrorIs(err, ErrLoanTypeExists)
}

func (suite *CompanyServiceTestSuite) TestAddLoanTypeTrimsWhitespace() {
	company := createTestCompany(suite.T(), suite.svc.db, false)

	company, err := suite.svc.AddLoanType(company.ID, "  School Fees Loan  ")
	suite.Require().NoError(err)
	suite.True(company.LoanTypes.Contains("School Fees Loan"))
}

func (suite *CompanyServiceTestSuite) TestRemoveLoanTypeUnknown() {
	company := createTestCompany(suite.T(), suite.svc.db, true)

	_, err := suite.svc.RemoveLoanType(company.ID, "Asset Finance")
	suite.ErrorIs(err, ErrLoanTypeNotFound)
}

func (suite *CompanyServiceTestSuite) TestAddLoanPeriodKeepsSortedOrder() {
	company := createTestCompany(suite.T(), suite.svc.db, false)

	for _, months := range []int{12, 3, 6} {
		var err error
		company, err = suite.svc.AddLoanPeriod(company.ID, months)
		suite.Require().NoError(err)
	}

	suite.Equal(models.IntList{3, 6, 12}, company.LoanPeriods)
}

func (suite *CompanyServiceTestSuite) TestAddLoanPeriodRejectsDuplicates() {
	company := createTestCompany(suite.T(), suite.svc.db, true)

	_, err := suite.svc.AddLoanPeriod(company.ID, 6)
	suite.ErrorIs(err, ErrPeriodExists)
}

func (suite *CompanyServiceTestSuite) TestUpdateSettingsDerivesLightVariant() {
	company := createTestCompany(suite.T(), suite.svc.db, false)

	color := "#2563eb"
	company, err := suite.svc.UpdateSettings(company.ID, &UpdateSettingsRequest{
		BrandColor: &color,
	})
	suite.Require().NoError(err)
	suite.Equal("#2563eb", company.BrandColor)
	suite.Equal("#2563eb33", company.BrandColorLight)
}

func (suite *CompanyServiceTestSuite) TestUpdateSettingsExplicitLightVariantWins() {
	company := createTestCompany(suite.T(), suite.svc.db, false)

	color, light := "#2563eb", "#dbeafe"
	company, err := suite.svc.UpdateSettings(company.ID, &UpdateSettingsRequest{
		BrandColor:      &color,
		BrandColorLight: &light,
	})
	suite.Require().NoError(err)
	suite.Equal("#dbeafe", company.BrandColorLight)
}

func (suite *CompanyServiceTestSuite) TestGeneratePublicLinkGatedOnCompletion() {
	company := createTestCompany(suite.T(), suite.svc.db, false)

	_, err := suite.svc.GeneratePublicLink(company.ID)
	suite.ErrorIs(err, ErrSettingsIncomplete)
}

func (suite *CompanyServiceTestSuite) TestGeneratePublicLink() {
	company := createTestCompany(suite.T(), suite.svc.db, true)

	link, err := suite.svc.GeneratePublicLink(company.ID)
	suite.Require().NoError(err)
	suite.Equal(fmt.Sprintf("https://app.loanpesa.test/apply/%s", company.ID), link)

	// The link is persisted, and regenerating is idempotent
	reloaded, err := suite.svc.Get(company.ID)
	suite.Require().NoError(err)
	suite.Equal(link, reloaded.PublicFormLink)

	again, err := suite.svc.GeneratePublicLink(company.ID)
	suite.Require().NoError(err)
	suite.Equal(link, again)
}

func (suite *CompanyServiceTestSuite) TestGetPublicGatesIncompleteAndUnknownAlike() {
	incomplete := createTestCompany(suite.T(), suite.svc.db, false)

	_, err := suite.svc.GetPublic(incomplete.ID)
	suite.ErrorIs(err, ErrFormUnavailable)

	_, err = suite.svc.GetPublic(newUUID())
	suite.ErrorIs(err, ErrFormUnavailable)
}

func TestCompanyServiceSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func TestDeriveLightVariant(t *testing.T) {
	if got := DeriveLightVariant("#f97316"); got != "#f9731633" {
		t.Errorf("DeriveLightVariant(#f97316) = %q", got)
	}
	// Non-standard inputs pass through untouched
	if got := DeriveLightVariant("#fff"); got != "#fff" {
		t.Errorf("DeriveLightVariant(#fff) = %q", got)
	}
}
