package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ristora/booking"
	"ristora/menu"
)

// MemoryLedger is an in-process booking.Ledger. Iteration order is insertion
// order. Safe for concurrent use.
type MemoryLedger struct {
	mu       sync.RWMutex
	bookings []booking.Booking
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (l *MemoryLedger) Insert(_ context.Context, b *booking.Booking) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *b
	stored.ID = uuid.NewString()
	l.bookings = append(l.bookings, stored)
	return stored.ID, nil
}

func (l *MemoryLedger) ListByEmail(_ context.Context, email string) ([]booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []booking.Booking
	for _, b := range l.bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (l *MemoryLedger) ListBetween(_ context.Context, from, to time.Time) ([]booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []booking.Booking
	for _, b := range l.bookings {
		if !b.DateTime.Before(from) && b.DateTime.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (l *MemoryLedger) Count(_ context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings), nil
}

// MemoryCatalog is an in-process menu.Catalog.
type MemoryCatalog struct {
	mu    sync.RWMutex
	items []menu.Item
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (c *MemoryCatalog) List(_ context.Context) ([]menu.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]menu.Item, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *MemoryCatalog) Count(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

func (c *MemoryCatalog) Insert(_ context.Context, item menu.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return nil
}
