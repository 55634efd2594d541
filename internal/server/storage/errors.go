package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrDepartmentNotFound indicates that department was not found
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrAuditScheduleNotFound indicates that no audit schedule was seeded
	ErrAuditScheduleNotFound = errors.New("audit schedule not found")
)
