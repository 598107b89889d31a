// internal/services/company_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loanpesa/loanpesa-backend/internal/config"
	"github.com/loanpesa/loanpesa-backend/internal/models"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

type CompanyService struct {
	db  *gorm.DB
	cfg *config.Config
}

// UpdateSettingsRequest is a partial update; nil fields are left untouched.
type UpdateSettingsRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	BrandColor      *string `json:"brand_color,omitempty" validate:"omitempty,brand_color"`
	BrandColorLight *string `json:"brand_color_light,omitempty" validate:"omitempty,brand_color"`
	Logo            *string `json:"logo,omitempty"`
}

func NewCompanyService(db *gorm.DB, cfg *config.Config) *CompanyService {
	return &CompanyService{
		db:  db,
		cfg: cfg,
	}
}

func (s *CompanyService) Get(companyID uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &company, nil
}

// GetPublic resolves a company for the applicant-facing form. The form is
// gated on settings completion: an unknown company and an incompletely
// configured one are indistinguishable to applicants.
func (s *CompanyService) GetPublic(companyID uuid.UUID) (*models.Company, error) {
	company, err := s.Get(companyID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return nil, ErrFormUnavailable
		}
		return nil, err
	}
	if !company.SettingsCompleted {
		return nil, ErrFormUnavailable
	}
	return company, nil
}

// UpdateSettings merges a partial update into the company and re-derives the
// dependent fields. When a brand color arrives without an explicit light
// variant, the light variant is the color with an alpha suffix, matching the
// branding the form renders.
func (s *CompanyService) UpdateSettings(companyID uuid.UUID, req *UpdateSettingsRequest) (*models.Company, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.BrandColor != nil {
		company.BrandColor = *req.BrandColor
		if req.BrandColorLight == nil {
			company.BrandColorLight = DeriveLightVariant(*req.BrandColor)
		}
	}
	if req.BrandColorLight != nil {
		company.BrandColorLight = *req.BrandColorLight
	}
	if req.Logo != nil {
		company.LogoURL = *req.Logo
	}

	return s.save(company)
}

func (s *CompanyService) AddLoanType(companyID uuid.UUID, name string) (*models.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("loan type is required")
	}

	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}
	if company.LoanTypes.Contains(name) {
		return nil, ErrLoanTypeExists
	}

	company.LoanTypes = append(company.LoanTypes, name)
	return s.save(company)
}

func (s *CompanyService) RemoveLoanType(companyID uuid.UUID, name string) (*models.Company, error) {
	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}
	if !company.LoanTypes.Contains(name) {
		return nil, ErrLoanTypeNotFound
	}

	kept := make(models.StringList, 0, len(company.LoanTypes)-1)
	for _, t := range company.LoanTypes {
		if t != name {
			kept = append(kept, t)
		}
	}
	company.LoanTypes = kept
	return s.save(company)
}

func (s *CompanyService) AddLoanPeriod(companyID uuid.UUID, months int) (*models.Company, error) {
	if months < 1 {
		return nil, errors.New("period must be at least 1 month")
	}

	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}
	if company.LoanPeriods.Contains(months) {
		return nil, ErrPeriodExists
	}

	company.LoanPeriods = append(company.LoanPeriods, months)
	sort.Ints(company.LoanPeriods)
	return s.save(company)
}

func (s *CompanyService) RemoveLoanPeriod(companyID uuid.UUID, months int) (*models.Company, error) {
	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}
	if !company.LoanPeriods.Contains(months) {
		return nil, ErrPeriodNotFound
	}

	kept := make(models.IntList, 0, len(company.LoanPeriods)-1)
	for _, p := range company.LoanPeriods {
		if p != months {
			kept = append(kept, p)
		}
	}
	company.LoanPeriods = kept
	return s.save(company)
}

// GeneratePublicLink derives the applicant-facing form URL for a fully
// configured company and records it on the company record. The link is a
// pure function of the company id, so regenerating it is idempotent.
func (s *CompanyService) GeneratePublicLink(companyID uuid.UUID) (string, error) {
	company, err := s.Get(companyID)
	if err != nil {
		return "", err
	}
	if !company.SettingsCompleted {
		return "", ErrSettingsIncomplete
	}

	link := fmt.Sprintf("%s/apply/%s", strings.TrimRight(s.cfg.Public.BaseURL, "/"), company.ID)
	company.PublicFormLink = link
	if _, err := s.save(company); err != nil {
		return "", err
	}
	return link, nil
}

// save persists the company, re-deriving settingsCompleted first. Every
// mutation funnels through here so the flag can never go stale.
func (s *CompanyService) save(company *models.Company) (*models.Company, error) {
	company.RecomputeSettingsCompleted()
	if err := s.db.Save(company).Error; err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	return company, nil
}

// DeriveLightVariant appends an alpha suffix to a hex color, producing the
// translucent background shade the public form uses.
func DeriveLightVariant(color string) string {
	if len(color) == 7 && strings.HasPrefix(color, "#") {
		return color + "33"
	}
	return color
}
