package booking

import (
	"context"
	"time"
)

// Ledger is the durable collection of committed bookings. Each call is
// individually atomic; calls do not compose atomically, so any
// read-then-decide sequence must be serialized by the caller.
type Ledger interface {
	// Insert stores a new booking and returns the assigned identifier.
	Insert(ctx context.Context, b *Booking) (string, error)

	// ListByEmail returns bookings whose customer email matches exactly,
	// in ledger iteration order (not guaranteed chronological).
	ListByEmail(ctx context.Context, email string) ([]Booking, error)

	// ListBetween returns bookings with from <= DateTime < to.
	ListBetween(ctx context.Context, from, to time.Time) ([]Booking, error)

	// Count returns the total number of stored bookings.
	Count(ctx context.Context) (int, error)
}
