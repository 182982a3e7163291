package booking

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestParseGuestCount(t *testing.T) {
	t.Parallel()

	n, err := ParseGuestCount(" 4 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("unexpected count: %d", n)
	}
}

func TestParseGuestCountRejectsNonInteger(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"abc", "", "3.5", "two"} {
		if _, err := ParseGuestCount(text); !errors.Is(err, ErrInvalidGuestCount) {
			t.Fatalf("ParseGuestCount(%q) error = %v, want ErrInvalidGuestCount", text, err)
		}
	}
}

func TestParseGuestCountRejectsNonPositive(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"0", "-3"} {
		if _, err := ParseGuestCount(text); !errors.Is(err, ErrInvalidGuestCount) {
			t.Fatalf("ParseGuestCount(%q) error = %v, want ErrInvalidGuestCount", text, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	if err := ValidateEmail("a@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateEmail("bobexample.com"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("error = %v, want ErrInvalidEmail", err)
	}
}

/* ------------------------------ test fakes ------------------------------ */

// fakeLedger is an insertion-ordered in-memory ledger for core tests.
type fakeLedger struct {
	bookings  []Booking
	nextID    int
	insertErr error
	listErr   error
}

func (f *fakeLedger) Insert(_ context.Context, b *Booking) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.nextID++
	stored := *b
	stored.ID = strconv.Itoa(f.nextID)
	f.bookings = append(f.bookings, stored)
	return stored.ID, nil
}

func (f *fakeLedger) ListByEmail(_ context.Context, email string) ([]Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Booking
	for _, b := range f.bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListBetween(_ context.Context, from, to time.Time) ([]Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Booking
	for _, b := range f.bookings {
		if !b.DateTime.Before(from) && b.DateTime.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) Count(_ context.Context) (int, error) {
	return len(f.bookings), nil
}

// stubParser returns a fixed timestamp for any input, or an error when the
// input matches failOn.
type stubParser struct {
	result time.Time
	failOn string
	err    error
}

func (s stubParser) Parse(text string, _ time.Time) (time.Time, error) {
	if s.failOn != "" && text == s.failOn {
		return time.Time{}, s.err
	}
	return s.result, nil
}
