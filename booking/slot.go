package booking

import (
	"context"
	"fmt"
	"time"
)

// SlotStart floors a timestamp to the start of its 1-hour capacity slot,
// preserving the location.
func SlotStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// SlotBounds returns the half-open interval [start, start+1h) containing t.
func SlotBounds(t time.Time) (start, end time.Time) {
	start = SlotStart(t)
	return start, start.Add(time.Hour)
}

// DemandInSlot sums committed guest counts over the slot containing t. The
// ledger is the single source of truth and is queried fresh on every call.
func DemandInSlot(ctx context.Context, ledger Ledger, t time.Time) (int, error) {
	start, end := SlotBounds(t)

	bookings, err := ledger.ListBetween(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: list slot bookings: %v", ErrStoreFailure, err)
	}

	total := 0
	for _, b := range bookings {
		total += b.NumPeople
	}
	return total, nil
}
