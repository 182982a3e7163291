package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"ristora/timeparse"
)

func newTestEngine(t *testing.T, ledger Ledger, parser timeparse.Parser) *AvailabilityEngine {
	t.Helper()
	engine, err := NewAvailabilityEngine(ledger, parser, Config{MaxCapacity: 50})
	if err != nil {
		t.Fatalf("NewAvailabilityEngine() error = %v", err)
	}
	return engine
}

func TestCheckRejectsInvalidGuestCount(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &fakeLedger{}, stubParser{result: time.Now().Add(time.Hour)})

	for _, text := range []string{"abc", "0", "-1"} {
		if _, err := engine.Check(context.Background(), "tomorrow 7PM", text); !errors.Is(err, ErrInvalidGuestCount) {
			t.Fatalf("Check(num=%q) error = %v, want ErrInvalidGuestCount", text, err)
		}
	}
}

func TestCheckRejectsUnparseableDateTime(t *testing.T) {
	t.Parallel()

	parser := stubParser{failOn: "gibberish", err: timeparse.ErrUnparseable}
	engine := newTestEngine(t, &fakeLedger{}, parser)

	if _, err := engine.Check(context.Background(), "gibberish", "2"); !errors.Is(err, ErrUnparseableDateTime) {
		t.Fatalf("Check() error = %v, want ErrUnparseableDateTime", err)
	}
}

func TestCheckCapacityBoundary(t *testing.T) {
	t.Parallel()

	slot := time.Date(2026, 12, 9, 20, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{bookings: []Booking{
		{CustomerEmail: "a@x.com", DateTime: slot.Add(10 * time.Minute), NumPeople: 20},
		{CustomerEmail: "b@x.com", DateTime: slot.Add(20 * time.Minute), NumPeople: 25},
	}}
	engine := newTestEngine(t, ledger, stubParser{result: slot.Add(30 * time.Minute)})

	// 45 already committed: 6 more exceeds 50, 5 exactly fills it.
	available, err := engine.Check(context.Background(), "9th of December 8PM", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available {
		t.Fatal("expected 6 guests to be rejected at demand 45")
	}

	available, err = engine.Check(context.Background(), "9th of December 8PM", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Fatal("expected 5 guests to fit at demand 45")
	}
}

func TestCheckIsAdvisoryOnly(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{}
	engine := newTestEngine(t, ledger, stubParser{result: time.Date(2026, 12, 9, 20, 0, 0, 0, time.UTC)})

	for i := 0; i < 3; i++ {
		if _, err := engine.Check(context.Background(), "tomorrow", "50"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if n, _ := ledger.Count(context.Background()); n != 0 {
		t.Fatalf("advisory check must not write to the ledger, count = %d", n)
	}
}
