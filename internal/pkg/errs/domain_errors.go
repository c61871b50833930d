package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrCourtNotFound     = errors.New("court not found")
	ErrCoachNotFound     = errors.New("coach not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrDuplicateName     = errors.New("name already in use")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrBookingCancelled  = errors.New("booking is already cancelled")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAccessDenied      = errors.New("access denied")

	// Pricing rule errors
	ErrRuleNotFound      = errors.New("pricing rule not found")
	ErrInvalidRuleType   = errors.New("invalid pricing rule type")
	ErrInvalidMultiplier = errors.New("multiplier cannot be negative")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("access token required")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
