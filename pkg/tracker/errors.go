package tracker

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("shipment is in a terminal state")
	ErrInvalidTransition = errors.New("invalid status transition")
)
