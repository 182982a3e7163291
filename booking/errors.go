package booking

import "errors"

var (
	ErrUnparseableDateTime = errors.New("unable to parse the date and time")
	ErrPastDateTime        = errors.New("date and time must be in the future")
	ErrInvalidGuestCount   = errors.New("number of people must be a positive integer")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidName         = errors.New("customer name is required")
	ErrSlotFull            = errors.New("not enough capacity in the requested time slot")
	ErrStoreFailure        = errors.New("booking store failure")
)
