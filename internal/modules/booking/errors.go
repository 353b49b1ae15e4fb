package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSlotTaken  = errors.New("slot already taken by another booking")
	ErrNotFound   = errors.New("booking not found")
)
