package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/domain"
	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/repo"
)

// userColumns is the decode contract for account rows.
const userColumns = "mailid, pword, fname, lname, addr, phno"

// UserService provides CRUD, registration, and credential checks over one
// role-scoped account table. The table name comes from the UserRole
// enumeration only; every query string is composed once at construction and
// user input never reaches query composition.
type UserService struct {
	role domain.UserRole

	provider repo.ConnectionProvider
	log      zerolog.Logger

	selectByMailSQL string
	selectAllSQL    string
	updateSQL       string
	deleteSQL       string
	insertSQL       string
	loginSQL        string
}

// NewUserService constructs a UserService bound to the table for role.
// Roles outside the enumeration (including the zero value) resolve to
// CUSTOMER.
func NewUserService(p repo.ConnectionProvider, role domain.UserRole, log zerolog.Logger) *UserService {
	table := role.TableName()
	return &UserService{
		role:     domain.UserRole(table),
		provider: p,
		log:      log.With().Str("service", "user").Str("table", table).Logger(),

		selectByMailSQL: fmt.Sprintf("SELECT %s FROM %s WHERE mailid = ?", userColumns, table),
		selectAllSQL:    fmt.Sprintf("SELECT %s FROM %s", userColumns, table),
		updateSQL:       fmt.Sprintf("UPDATE %s SET fname = ?, lname = ?, addr = ?, phno = ? WHERE mailid = ?", table),
		deleteSQL:       fmt.Sprintf("DELETE FROM %s WHERE mailid = ?", table),
		insertSQL:       fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)", table, userColumns),
		loginSQL:        fmt.Sprintf("SELECT %s FROM %s WHERE mailid = ? AND pword = ?", userColumns, table),
	}
}

// Role returns the role this service was resolved to at construction.
func (s *UserService) Role() domain.UserRole { return s.role }

// GetUserByEmailID returns the account for mailID. A missing row surfaces
// as the domain error carrying NO_CONTENT.
func (s *UserService) GetUserByEmailID(ctx context.Context, mailID string) (*domain.User, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, s.selectByMailSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	var user domain.User
	if err := stmt.GetContext(ctx, &user, mailID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewServiceError(domain.CodeNoContent)
		}
		return nil, domain.WrapServiceError(err)
	}
	return &user, nil
}

// GetAllUsers lists every account in the role table. An empty table
// surfaces as the domain error carrying NO_CONTENT, unlike the train
// listings which return empty slices; the asymmetry is part of the
// contract.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, s.selectAllSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	var users []domain.User
	if err := stmt.SelectContext(ctx, &users); err != nil {
		return nil, domain.WrapServiceError(err)
	}
	if len(users) == 0 {
		return nil, domain.NewServiceError(domain.CodeNoContent)
	}
	return users, nil
}

// UpdateUser rewrites the profile fields, keyed on mail id. SUCCESS when
// exactly one row was affected, FAILURE when zero, "FAILURE: <message>" on
// an I/O failure. Never returns an error.
func (s *UserService) UpdateUser(ctx context.Context, user domain.User) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return failureStatus(err)
	}
	stmt, err := db.PreparexContext(ctx, s.updateSQL)
	if err != nil {
		s.log.Warn().Err(err).Str("mailid", user.MailID).Msg("update user: prepare failed")
		return failureStatus(err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, user.FirstName, user.LastName, user.Address, user.Phone, user.MailID)
	if err != nil {
		s.log.Warn().Err(err).Str("mailid", user.MailID).Msg("update user: update failed")
		return failureStatus(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return failureStatus(err)
	} else if n != 1 {
		return domain.CodeFailure.String()
	}
	return domain.CodeSuccess.String()
}

// DeleteUser removes the account keyed on mail id. Same status discipline
// as UpdateUser.
func (s *UserService) DeleteUser(ctx context.Context, user domain.User) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return failureStatus(err)
	}
	stmt, err := db.PreparexContext(ctx, s.deleteSQL)
	if err != nil {
		s.log.Warn().Err(err).Str("mailid", user.MailID).Msg("delete user: prepare failed")
		return failureStatus(err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, user.MailID)
	if err != nil {
		s.log.Warn().Err(err).Str("mailid", user.MailID).Msg("delete user: delete failed")
		return failureStatus(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return failureStatus(err)
	} else if n != 1 {
		return domain.CodeFailure.String()
	}
	return domain.CodeSuccess.String()
}

// RegisterUser inserts one account binding (mailid, pword, fname, lname,
// addr, phno) in that order. A unique-key violation produces
// "FAILURE: User With Id: <mailID> is already registered"; any other I/O
// failure produces "FAILURE: <message>".
func (s *UserService) RegisterUser(ctx context.Context, user domain.User) string {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return s.registerFailure(user.MailID, err)
	}
	stmt, err := db.PreparexContext(ctx, s.insertSQL)
	if err != nil {
		return s.registerFailure(user.MailID, err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, user.MailID, user.Password, user.FirstName, user.LastName, user.Address, user.Phone); err != nil {
		return s.registerFailure(user.MailID, err)
	}
	return domain.CodeSuccess.String()
}

func (s *UserService) registerFailure(mailID string, err error) string {
	if isDuplicateKey(err) {
		s.log.Info().Str("mailid", mailID).Msg("register user: duplicate mail id")
		return fmt.Sprintf("%s%sUser With Id: %s is already registered", domain.CodeFailure, statusSeparator, mailID)
	}
	s.log.Warn().Err(err).Str("mailid", mailID).Msg("register user failed")
	return failureStatus(err)
}

// LoginUser checks the credential pair against the role table. A matching
// row comes back as a fully populated user, password included. A zero-row
// result surfaces as the domain error carrying UNAUTHORIZED.
func (s *UserService) LoginUser(ctx context.Context, mailID, password string) (*domain.User, error) {
	db, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	stmt, err := db.PreparexContext(ctx, s.loginSQL)
	if err != nil {
		return nil, domain.WrapServiceError(err)
	}
	defer stmt.Close()

	var user domain.User
	if err := stmt.GetContext(ctx, &user, mailID, password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.Info().Str("mailid", mailID).Msg("login rejected")
			return nil, domain.NewServiceError(domain.CodeUnauthorized)
		}
		return nil, domain.WrapServiceError(err)
	}
	return &user, nil
}
