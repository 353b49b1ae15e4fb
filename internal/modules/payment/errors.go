package payment

import "errors"

var ErrBookingNotFound = errors.New("referenced booking not found")
