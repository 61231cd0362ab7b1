package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProviderConflict = errors.New("provider booking conflict")

	// Catalog errors
	ErrServiceNotFound  = errors.New("service not found")
	ErrProviderNotFound = errors.New("provider not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidDate      = errors.New("invalid date")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
