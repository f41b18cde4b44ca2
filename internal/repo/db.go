// Package repo implements the connection layer beneath the reservation
// services: it opens the MySQL pool, applies pool settings, and hands out
// connections behind the ConnectionProvider contract the services consume.
package repo

import (
	"context"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/config"
	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/domain"
)

// ConnectionProvider yields a live database handle for the duration of one
// service call. Implementations may pool or reuse connections internally;
// callers treat each returned handle as single-use per call and never close
// it themselves. Must be safe for concurrent use.
type ConnectionProvider interface {
	Connection(ctx context.Context) (*sqlx.DB, error)
}

// DB is the process-wide ConnectionProvider backed by a sqlx pool.
// Safe for concurrent use; the handle is guarded so a Close racing a call
// in flight is observed cleanly.
type DB struct {
	mu sync.RWMutex
	db *sqlx.DB
}

// Open connects to MySQL using the supplied settings, configures the pool,
// and verifies the connection with a ping. Failures surface as the domain
// error carrying the driver's message.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", cfg.DSN())
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &DB{db: db}, nil
}

// NewDB wraps an existing handle. Used by tests and by callers that manage
// the pool themselves.
func NewDB(db *sqlx.DB) *DB { return &DB{db: db} }

// Connection returns the live handle, or the domain error when the provider
// was never opened or has been closed.
func (d *DB) Connection(ctx context.Context) (*sqlx.DB, error) {
	if d == nil {
		return nil, domain.NewServiceError(domain.CodeInternalServerError)
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.db == nil {
		return nil, domain.NewServiceError(domain.CodeInternalServerError)
	}
	return d.db, nil
}

// Ping verifies the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	db, err := d.Connection(ctx)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return domain.WrapServiceError(err)
	}
	return nil
}

// Close releases the pool. The provider is unusable afterwards.
func (d *DB) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}
