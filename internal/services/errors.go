// internal/services/errors.go
package services

import "errors"

// Sentinel errors handlers translate into HTTP responses.
var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrFormUnavailable     = errors.New("application form not available")
	ErrSettingsIncomplete  = errors.New("company settings are incomplete")
	ErrLoanTypeExists      = errors.New("loan type already exists")
	ErrLoanTypeNotFound    = errors.New("loan type not found")
	ErrPeriodExists        = errors.New("loan period already exists")
	ErrPeriodNotFound      = errors.New("loan period not found")
	ErrInvalidLoanType     = errors.New("loan type is not offered by this company")
	ErrInvalidPeriod       = errors.New("repayment period is not offered by this company")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidStatus       = errors.New("status must be approved or declined")
	ErrEmailTaken          = errors.New("an account with this email already exists")
)
