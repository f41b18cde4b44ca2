package services

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// fakeProvider satisfies repo.ConnectionProvider over a sqlmock-backed
// handle, or fails every call with a fixed error.
type fakeProvider struct {
	db  *sqlx.DB
	err error
}

func (p *fakeProvider) Connection(ctx context.Context) (*sqlx.DB, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.db, nil
}

// newMock builds a provider whose driver is fully scripted by the returned
// sqlmock handle.
func newMock(t *testing.T) (*fakeProvider, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { raw.Close() })
	return &fakeProvider{db: sqlx.NewDb(raw, "sqlmock")}, mock
}

func mustMeet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet driver expectations: %v", err)
	}
}

func nopLog() zerolog.Logger { return zerolog.Nop() }
