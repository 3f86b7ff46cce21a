package lead

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrUnknownField     = errors.New("unknown form field")
	ErrReadOnlyField    = errors.New("field is read-only")
	ErrPersistence      = errors.New("persistence failed")
	ErrNotification     = errors.New("notification failed")
	ErrAlreadySubmitted = errors.New("submission already recorded")
)
