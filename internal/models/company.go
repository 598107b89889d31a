// internal/models/company.go
package models

// Default branding applied to every new tenant until the admin picks a color.
const (
	DefaultBrandColor      = "#f97316"
	DefaultBrandColorLight = "#fed7aa"
)

type Company struct {
	BaseModel
	Name              string     `json:"name" gorm:"size:255;not null"`
	BrandColor        string     `json:"brand_color" gorm:"size:20;not null;default:'#f97316'"`
	BrandColorLight   string     `json:"brand_color_light" gorm:"size:20;not null;default:'#fed7aa'"`
	LogoURL           string     `json:"logo,omitempty" gorm:"size:512"`
	LoanTypes         StringList `json:"loan_types" gorm:"type:text"`
	LoanPeriods       IntList    `json:"loan_periods" gorm:"type:text"`
	PublicFormLink    string     `json:"public_form_link,omitempty" gorm:"size:512"`
	SettingsCompleted bool       `json:"settings_completed" gorm:"not null;default:false"`

	// Relationships
	Users        []User            `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
	Applications []LoanApplication `json:"applications,omitempty" gorm:"foreignKey:CompanyID"`
}

// RecomputeSettingsCompleted re-derives the completion flag from the two
// catalogs. It must be called after every catalog mutation; the flag is never
// written independently.
func (c *Company) RecomputeSettingsCompleted() {
	c.SettingsCompleted = len(c.LoanTypes) > 0 && len(c.LoanPeriods) > 0
}
