package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ristora/timeparse"
)

// Config carries the process-wide capacity ceiling. It is injected rather
// than read from a global so independent services and tests cannot
// cross-contaminate.
type Config struct {
	MaxCapacity int `envconfig:"MAX_CAPACITY" split_words:"true" default:"50"`
}

func (c Config) Validate() error {
	if c.MaxCapacity <= 0 {
		return errors.New("max capacity must be positive")
	}
	return nil
}

// AvailabilityEngine answers advisory yes/no admission questions against the
// capacity ceiling. Checking reserves nothing: two concurrent checks may both
// report available for counts that jointly exceed capacity. Only Service
// admission is race-free.
type AvailabilityEngine struct {
	ledger      Ledger
	parser      timeparse.Parser
	maxCapacity int
	now         func() time.Time
}

func NewAvailabilityEngine(ledger Ledger, parser timeparse.Parser, cfg Config) (*AvailabilityEngine, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if parser == nil {
		return nil, errors.New("time parser is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AvailabilityEngine{
		ledger:      ledger,
		parser:      parser,
		maxCapacity: cfg.MaxCapacity,
		now:         time.Now,
	}, nil
}

// Check reports whether numPeopleText guests fit into the slot named by
// dateTimeText given current committed demand.
func (e *AvailabilityEngine) Check(ctx context.Context, dateTimeText, numPeopleText string) (bool, error) {
	numPeople, err := ParseGuestCount(numPeopleText)
	if err != nil {
		return false, err
	}

	when, err := e.parser.Parse(dateTimeText, e.now())
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnparseableDateTime, dateTimeText)
	}

	demand, err := DemandInSlot(ctx, e.ledger, when)
	if err != nil {
		return false, err
	}

	return e.maxCapacity-demand >= numPeople, nil
}
