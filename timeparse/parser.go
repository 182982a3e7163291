// Package timeparse turns natural-language date/time expressions into
// canonical timestamps. Ambiguous expressions resolve to the nearest future
// occurrence relative to the reference time.
package timeparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

var ErrUnparseable = errors.New("unable to parse the date and time")

// Parser is the contract the booking core depends on. The production
// implementation wraps a natural-language parser; tests substitute a
// deterministic stub.
type Parser interface {
	Parse(text string, now time.Time) (time.Time, error)
}

// NaturalParser parses free-form expressions such as "tomorrow 7PM" or
// "9th of December 8PM" with a prefer-future bias.
//
// It does not reject past timestamps that survive the future preference;
// callers that need a future time must compare against their own reference.
type NaturalParser struct{}

func New() NaturalParser {
	return NaturalParser{}
}

func (NaturalParser) Parse(text string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, trimmed)
	}
	if dt.Time.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, trimmed)
	}

	parsed := dt.Time.Truncate(time.Second)

	// An expression that lands exactly on the reference instant resolves to
	// the next occurrence of that clock time rather than "now".
	if parsed.Equal(now.Truncate(time.Second)) {
		parsed = parsed.Add(24 * time.Hour)
	}

	return parsed, nil
}
