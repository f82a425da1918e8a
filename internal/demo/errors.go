package demo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the only error class a caller ever sees.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSlot is returned when slot_iso is not an ISO-8601 date-time.
	ErrInvalidSlot = fmt.Errorf("%w: invalid slot format", ErrInvalidInput)
)
