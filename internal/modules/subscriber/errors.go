package subscriber

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
