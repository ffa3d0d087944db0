package launch

import (
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

var (
	ErrUnknownDestination           = errors.New("no matching destination found")
	ErrNotAborted                   = errors.New("launch not aborted")
	ErrInvalidFlightNumber          = errors.New("flight number must be a positive integer")
	ErrFlightNumberOverrideDisabled = errors.New("flight number override is disabled")
	ErrFlightNumberExhausted        = errors.New("no free flight number after retries")

	// ErrLaunchNotFound is returned by the store and passed through unchanged
	ErrLaunchNotFound = operation.ErrLaunchNotFound
)
