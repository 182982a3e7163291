// Package booking implements the reservation core: the booking entity, the
// ledger contract, hourly slot demand aggregation, the advisory availability
// check, and the admission-controlled booking service.
package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booking is a committed reservation. Records are created once on successful
// admission and never mutated or deleted afterwards.
type Booking struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	DateTime      time.Time `json:"date_time"`
	NumPeople     int       `json:"num_people"`
}

// ParseGuestCount converts guest-count text to a strictly positive integer.
// It is the single validation routine shared by the availability check and
// booking creation.
func ParseGuestCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidGuestCount, text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidGuestCount, n)
	}
	return n, nil
}

// ValidateEmail applies the syntactic check only: the address must contain
// an @ separator. No domain validation.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
