package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/domain"
	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/repo"
	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/utils"
)

const (
	selectBookingsSQL = "SELECT transid, mailid, tr_no, date, from_stn, to_stn, seats, amount FROM HISTORY WHERE mailid = ?"
	insertHistorySQL  = "INSERT INTO HISTORY (transid, mailid, tr_no, date, from_stn, to_stn, seats, amount) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
)

// BookingService records transactional reservations in the append-only
// history table and lists them per customer. History rows are immutable
// once written.
type BookingService struct {
	provider repo.ConnectionProvider
	log      zerolog.Logger

	// newTransactionID is swappable in tests; production uses utils.
	newTransactionID func() string
}

// NewBookingService constructs a BookingService on top of the given provider.
func NewBookingService(p repo.ConnectionProvider, log zerolog.Logger) *BookingService {
	return &BookingService{
		provider:         p,
		log:              log.With().Str("service", "booking").Logger(),
		newTransactionID: utils.NewTransactionID,
	}
}

// GetAllBookingsByCustomerID lists the history rows for mailID. No rows
// yields an empty slice; I/O failures surface as the domain error.
func (s *BookingService) GetAllBookingsByCustomerID(ctx context.Context, mailID string) ([]domain.HistoryEntry, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, selectBookingsSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	entries := []domain.HistoryEntry{}
	if err := stmt.SelectContext(ctx, &entries, mailID); err != nil {
		return nil, domain.WrapServiceError(err)
	}
	return entries, nil
}

// CreateHistory assigns a fresh transaction id to a copy of entry and
// inserts it, binding (transid, mailid, tr_no, date, from_stn, to_stn,
// seats, amount) in that order with seats widened to 64 bits. One affected
// row returns the copy; zero rows surfaces the domain error carrying
// INTERNAL_SERVER_ERROR; an I/O failure surfaces the domain error with the
// driver's message.
func (s *BookingService) CreateHistory(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, insertHistorySQL)
	if err != nil {
		s.log.Error().Err(err).Str("mailid", entry.MailID).Msg("create history: prepare failed")
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	created := entry
	created.TransactionID = s.newTransactionID()

	res, err := stmt.ExecContext(ctx,
		created.TransactionID,
		created.MailID,
		created.TrainNo,
		created.Date,
		created.FromStation,
		created.ToStation,
		int64(created.Seats),
		created.Amount,
	)
	if err != nil {
		s.log.Error().Err(err).Str("mailid", entry.MailID).Msg("create history: insert failed")
		return nil, domain.WrapServiceError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	if n != 1 {
		s.log.Error().Str("mailid", entry.MailID).Int64("rows", n).Msg("create history: no row written")
		return nil, domain.NewServiceError(domain.CodeInternalServerError)
	}

	s.log.Info().Str("transid", created.TransactionID).Str("mailid", created.MailID).Msg("booking recorded")
	return &created, nil
}
