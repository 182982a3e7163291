package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"ristora/timeparse"
)

// Service admits new bookings and retrieves existing ones. Admission is
// transactional per slot: a keyed mutex is held across the demand re-read and
// the insert, so a slot never exceeds the configured capacity even under
// concurrent bookings from multiple sessions.
type Service struct {
	ledger      Ledger
	parser      timeparse.Parser
	maxCapacity int
	now         func() time.Time

	mu        sync.Mutex
	slotLocks map[time.Time]*slotLock
}

// slotLock is reference-counted so the lock map stays bounded by the number
// of slots with admissions in flight, not by every slot ever booked.
type slotLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(ledger Ledger, parser timeparse.Parser, cfg Config) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if parser == nil {
		return nil, errors.New("time parser is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		ledger:      ledger,
		parser:      parser,
		maxCapacity: cfg.MaxCapacity,
		now:         time.Now,
		slotLocks:   make(map[time.Time]*slotLock),
	}, nil
}

// CreateBooking validates the request, re-checks slot capacity inside the
// slot's critical section, and inserts the booking. Guest-count validation is
// the same routine the availability check uses.
func (s *Service) CreateBooking(ctx context.Context, name, email, dateTimeText, numPeopleText string) (*Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	numPeople, err := ParseGuestCount(numPeopleText)
	if err != nil {
		return nil, err
	}

	now := s.now()
	when, err := s.parser.Parse(dateTimeText, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableDateTime, dateTimeText)
	}
	if !when.After(now) {
		return nil, fmt.Errorf("%w: %s", ErrPastDateTime, when.Format(time.RFC3339))
	}

	unlock := s.lockSlot(SlotStart(when))
	defer unlock()

	demand, err := DemandInSlot(ctx, s.ledger, when)
	if err != nil {
		return nil, err
	}
	if s.maxCapacity-demand < numPeople {
		return nil, fmt.Errorf("%w: %d of %d seats already booked", ErrSlotFull, demand, s.maxCapacity)
	}

	b := &Booking{
		CustomerName:  name,
		CustomerEmail: email,
		DateTime:      when,
		NumPeople:     numPeople,
	}

	id, err := s.ledger.Insert(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %v", ErrStoreFailure, err)
	}
	b.ID = id

	log.Info().
		Str("booking_id", b.ID).
		Time("date_time", b.DateTime).
		Int("num_people", b.NumPeople).
		Msg("booking created")

	return b, nil
}

// ListBookings returns all bookings for the email, in ledger iteration order.
// An unknown email yields an empty list, not an error.
func (s *Service) ListBookings(ctx context.Context, email string) ([]Booking, error) {
	bookings, err := s.ledger.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: list by email: %v", ErrStoreFailure, err)
	}
	return bookings, nil
}

// lockSlot serializes admission per slot key. Lock granularity is one slot,
// so bookings for different hours proceed independently. The entry is dropped
// from the map once the last holder releases it.
func (s *Service) lockSlot(slot time.Time) func() {
	s.mu.Lock()
	lk, ok := s.slotLocks[slot]
	if !ok {
		lk = &slotLock{}
		s.slotLocks[slot] = lk
	}
	lk.refs++
	s.mu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()

		s.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(s.slotLocks, slot)
		}
		s.mu.Unlock()
	}
}
