// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User Management
	KeyUserNotFound = "user.not_found"

	// Company settings
	KeyCompanyNotFound        = "company.not_found"
	KeyCompanyUpdated         = "company.updated"
	KeyCompanyLoanTypeAdded   = "company.loan_type_added"
	KeyCompanyLoanTypeRemoved = "company.loan_type_removed"
	KeyCompanyLoanTypeExists  = "company.loan_type_exists"
	KeyCompanyLoanTypeMissing = "company.loan_type_not_found"
	KeyCompanyPeriodAdded     = "company.period_added"
	KeyCompanyPeriodRemoved   = "company.period_removed"
	KeyCompanyPeriodExists    = "company.period_exists"
	KeyCompanyPeriodMissing   = "company.period_not_found"
	KeyCompanyIncomplete      = "company.settings_incomplete"
	KeyCompanyLinkGenerated   = "company.link_generated"

	// Applications
	KeyApplicationReceived  = "application.received"
	KeyApplicationNotFound  = "application.not_found"
	KeyApplicationUpdated   = "application.updated"
	KeyApplicationFormGated = "application.form_unavailable"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
