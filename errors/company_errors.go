// errors/company_errors.go
package errors

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyConflict    = errors.New("company conflict")
	ErrInvalidCompanyData = errors.New("invalid company data")

	ErrDepartmentNotFound    = errors.New("department not found")
	ErrDepartmentConflict    = errors.New("department conflict")
	ErrInvalidDepartmentData = errors.New("invalid department data")
)
