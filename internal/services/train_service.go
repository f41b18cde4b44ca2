package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/domain"
	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/repo"
)

// Train catalog statements. Columns are selected by name so that row
// decoding never depends on schema column order.
const (
	insertTrainSQL = "INSERT INTO TRAIN (tr_no, tr_name, from_stn, to_stn, seats, fare) VALUES (?, ?, ?, ?, ?, ?)"
	deleteTrainSQL = "DELETE FROM TRAIN WHERE tr_no = ?"
	updateTrainSQL = "UPDATE TRAIN SET tr_name = ?, from_stn = ?, to_stn = ?, seats = ?, fare = ? WHERE tr_no = ?"
	selectTrainSQL = "SELECT tr_no, tr_name, from_stn, to_stn, seats, fare FROM TRAIN WHERE tr_no = ?"
	listTrainsSQL  = "SELECT tr_no, tr_name, from_stn, to_stn, seats, fare FROM TRAIN"
	searchRouteSQL = "SELECT tr_no, tr_name, from_stn, to_stn, seats, fare FROM TRAIN WHERE from_stn LIKE ? AND to_stn LIKE ?"
)

// TrainService provides CRUD over the train catalog plus origin-destination
// search. No ordering is promised on listings; callers sort if they need to.
type TrainService struct {
	provider repo.ConnectionProvider
	log      zerolog.Logger
}

// NewTrainService constructs a TrainService on top of the given provider.
func NewTrainService(p repo.ConnectionProvider, log zerolog.Logger) *TrainService {
	return &TrainService{
		provider: p,
		log:      log.With().Str("service", "train").Logger(),
	}
}

// AddTrain inserts a catalog row binding (tr_no, tr_name, from_stn, to_stn,
// seats, fare) in that order. Returns SUCCESS when exactly one row was
// produced, FAILURE when none, and "FAILURE: <message>" on an I/O failure.
// Never returns an error.
func (s *TrainService) AddTrain(ctx context.Context, train domain.Train) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return failureStatus(err)
	}
	stmt, err := db.PreparexContext(ctx, insertTrainSQL)
	if err != nil {
		s.log.Warn().Err(err).Int64("tr_no", train.Number).Msg("add train: prepare failed")
		return failureStatus(err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, train.Number, train.Name, train.FromStation, train.ToStation, train.Seats, train.Fare)
	if err != nil {
		s.log.Warn().Err(err).Int64("tr_no", train.Number).Msg("add train: insert failed")
		return failureStatus(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return failureStatus(err)
	} else if n == 0 {
		return domain.CodeFailure.String()
	}
	return domain.CodeSuccess.String()
}

// DeleteTrainByID deletes by primary key. SUCCESS when exactly one row was
// affected, FAILURE when zero, "FAILURE: <message>" on an I/O failure.
func (s *TrainService) DeleteTrainByID(ctx context.Context, trainNo string) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return failureStatus(err)
	}
	stmt, err := db.PreparexContext(ctx, deleteTrainSQL)
	if err != nil {
		s.log.Warn().Err(err).Str("tr_no", trainNo).Msg("delete train: prepare failed")
		return failureStatus(err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, trainNo)
	if err != nil {
		s.log.Warn().Err(err).Str("tr_no", trainNo).Msg("delete train: delete failed")
		return failureStatus(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return failureStatus(err)
	} else if n != 1 {
		return domain.CodeFailure.String()
	}
	return domain.CodeSuccess.String()
}

// UpdateTrain rewrites name, endpoints, capacity, and fare, keyed on the
// train number bound last. Same status discipline as AddTrain.
func (s *TrainService) UpdateTrain(ctx context.Context, train domain.Train) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return failureStatus(err)
	}
	stmt, err := db.PreparexContext(ctx, updateTrainSQL)
	if err != nil {
		s.log.Warn().Err(err).Int64("tr_no", train.Number).Msg("update train: prepare failed")
		return failureStatus(err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, train.Name, train.FromStation, train.ToStation, train.Seats, train.Fare, train.Number)
	if err != nil {
		s.log.Warn().Err(err).Int64("tr_no", train.Number).Msg("update train: update failed")
		return failureStatus(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return failureStatus(err)
	} else if n == 0 {
		return domain.CodeFailure.String()
	}
	return domain.CodeSuccess.String()
}

// GetTrainByID returns the catalog row for trainNo, or nil when absent.
// I/O failures surface as the domain error.
func (s *TrainService) GetTrainByID(ctx context.Context, trainNo string) (*domain.Train, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, selectTrainSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	var train domain.Train
	if err := stmt.GetContext(ctx, &train, trainNo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapServiceError(err)
	}
	return &train, nil
}

// GetAllTrains lists the catalog. An empty table yields an empty slice.
func (s *TrainService) GetAllTrains(ctx context.Context) ([]domain.Train, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, listTrainsSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	trains := []domain.Train{}
	if err := stmt.SelectContext(ctx, &trains); err != nil {
		return nil, domain.WrapServiceError(err)
	}
	return trains, nil
}

// GetTrainsBetweenStations matches both endpoints with a parameter-bound
// LIKE; each argument is wrapped in %...% before binding, never interpolated.
// Case-sensitivity follows the table collation.
func (s *TrainService) GetTrainsBetweenStations(ctx context.Context, fromStation, toStation string) ([]domain.Train, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, searchRouteSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	trains := []domain.Train{}
	if err := stmt.SelectContext(ctx, &trains, "%"+fromStation+"%", "%"+toStation+"%"); err != nil {
		return nil, domain.WrapServiceError(err)
	}
	return trains, nil
}
