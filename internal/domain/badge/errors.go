package badge

import "errors"

// Badge domain errors
var (
	ErrEventNotFound    = errors.New("badge event not found")
	ErrInvalidTimestamp = errors.New("badge timestamp could not be parsed")
	ErrInvalidPayload   = errors.New("badge payload could not be decoded")
	ErrUnauthorized     = errors.New("unauthorized to access these badge events")
)
