package booking

import (
	"context"
	"testing"
	"time"
)

func TestSlotStartFloorsToHour(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 12, 9, 20, 45, 30, 123, time.UTC)
	want := time.Date(2026, 12, 9, 20, 0, 0, 0, time.UTC)
	if got := SlotStart(in); !got.Equal(want) {
		t.Fatalf("SlotStart() = %v, want %v", got, want)
	}
}

func TestSlotBounds(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 12, 9, 20, 15, 0, 0, time.UTC)
	start, end := SlotBounds(in)
	if !start.Equal(time.Date(2026, 12, 9, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, 12, 9, 21, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}
}

func TestDemandInSlotSumsWithinHourOnly(t *testing.T) {
	t.Parallel()

	slot := time.Date(2026, 12, 9, 20, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{bookings: []Booking{
		{CustomerEmail: "a@x.com", DateTime: slot.Add(5 * time.Minute), NumPeople: 20},
		{CustomerEmail: "b@x.com", DateTime: slot.Add(50 * time.Minute), NumPeople: 25},
		{CustomerEmail: "c@x.com", DateTime: slot.Add(time.Hour), NumPeople: 10},   // next slot
		{CustomerEmail: "d@x.com", DateTime: slot.Add(-time.Minute), NumPeople: 7}, // previous slot
	}}

	got, err := DemandInSlot(context.Background(), ledger, slot.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 45 {
		t.Fatalf("DemandInSlot() = %d, want 45", got)
	}
}

func TestDemandInSlotEmptyLedger(t *testing.T) {
	t.Parallel()

	got, err := DemandInSlot(context.Background(), &fakeLedger{}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("DemandInSlot() = %d, want 0", got)
	}
}
