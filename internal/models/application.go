// internal/models/application.go
package models

import (
	"github.com/google/uuid"
)

// LoanApplication is one applicant submission received through a company's
// public form. Created only through the public intake path with status forced
// to pending; never deleted.
type LoanApplication struct {
	BaseModel
	CompanyID     uuid.UUID         `json:"company_id" gorm:"type:uuid;not null;index"`
	Reference     string            `json:"reference" gorm:"size:12;uniqueIndex"`
	ApplicantName string            `json:"applicant_name" gorm:"size:255;not null"`
	Email         string            `json:"email" gorm:"size:255;not null"`
	Phone         string            `json:"phone" gorm:"size:50;not null"`
	LoanType      string            `json:"loan_type" gorm:"size:100;not null;index"`
	Amount        int64             `json:"amount" gorm:"not null"`
	PeriodMonths  int               `json:"period" gorm:"not null"`
	Status        ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes         string            `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}
