package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Record errors
	ErrInvalidID    = fmt.Errorf("invalid id format")
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrSongNotFound = fmt.Errorf("song not found")

	// Store errors
	ErrStoreUnavailable = fmt.Errorf("document store unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingField    = fmt.Errorf("missing required field")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
