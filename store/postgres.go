// Package store provides ledger and catalog implementations: a bun-backed
// Postgres store for production and an in-memory store for tests and
// DSN-less runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"ristora/booking"
	"ristora/menu"
)

type PostgresConfig struct {
	DSN          string        `envconfig:"DSN" split_words:"true"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" split_words:"true" default:"5s"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" split_words:"true" default:"8"`
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, cfg PostgresConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithDialTimeout(cfg.DialTimeout),
	))
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// InitSchema creates the bookings and menu_items tables if absent, plus the
// slot-range index used by demand aggregation.
func InitSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*bookingRow)(nil),
		(*menuItemRow)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	_, err := db.NewCreateIndex().
		Model((*bookingRow)(nil)).
		Index("bookings_date_time_idx").
		Column("date_time").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create date_time index: %w", err)
	}
	return nil
}

type bookingRow struct {
	bun.BaseModel `bun:"table:bookings,alias:b"`

	ID            string    `bun:"id,pk"`
	CustomerName  string    `bun:"customer_name,notnull"`
	CustomerEmail string    `bun:"customer_email,notnull"`
	DateTime      time.Time `bun:"date_time,notnull"`
	NumPeople     int       `bun:"num_people,notnull"`
}

func (r bookingRow) toDomain() booking.Booking {
	return booking.Booking{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		DateTime:      r.DateTime,
		NumPeople:     r.NumPeople,
	}
}

// PostgresLedger implements booking.Ledger on a bookings table. Inserts are
// single statements and therefore atomic; IDs are assigned here.
type PostgresLedger struct {
	db *bun.DB
}

func NewPostgresLedger(db *bun.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Insert(ctx context.Context, b *booking.Booking) (string, error) {
	row := bookingRow{
		ID:            uuid.NewString(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		DateTime:      b.DateTime,
		NumPeople:     b.NumPeople,
	}
	if _, err := l.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return "", fmt.Errorf("insert booking: %w", err)
	}
	return row.ID, nil
}

func (l *PostgresLedger) ListByEmail(ctx context.Context, email string) ([]booking.Booking, error) {
	var rows []bookingRow
	err := l.db.NewSelect().
		Model(&rows).
		Where("customer_email = ?", email).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings by email: %w", err)
	}
	return rowsToDomain(rows), nil
}

func (l *PostgresLedger) ListBetween(ctx context.Context, from, to time.Time) ([]booking.Booking, error) {
	var rows []bookingRow
	err := l.db.NewSelect().
		Model(&rows).
		Where("date_time >= ?", from).
		Where("date_time < ?", to).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings between: %w", err)
	}
	return rowsToDomain(rows), nil
}

func (l *PostgresLedger) Count(ctx context.Context) (int, error) {
	n, err := l.db.NewSelect().Model((*bookingRow)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func rowsToDomain(rows []bookingRow) []booking.Booking {
	out := make([]booking.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

type menuItemRow struct {
	bun.BaseModel `bun:"table:menu_items,alias:m"`

	ID          string  `bun:"id,pk"`
	Name        string  `bun:"name,notnull"`
	Description string  `bun:"description,notnull"`
	Price       float64 `bun:"price,notnull"`
}

// PostgresCatalog implements menu.Catalog on a menu_items table.
type PostgresCatalog struct {
	db *bun.DB
}

func NewPostgresCatalog(db *bun.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (c *PostgresCatalog) List(ctx context.Context) ([]menu.Item, error) {
	var rows []menuItemRow
	if err := c.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	items := make([]menu.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, menu.Item{
			Name:        r.Name,
			Description: r.Description,
			Price:       r.Price,
		})
	}
	return items, nil
}

func (c *PostgresCatalog) Count(ctx context.Context) (int, error) {
	n, err := c.db.NewSelect().Model((*menuItemRow)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}

func (c *PostgresCatalog) Insert(ctx context.Context, item menu.Item) error {
	row := menuItemRow{
		ID:          uuid.NewString(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
	}
	if _, err := c.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}
