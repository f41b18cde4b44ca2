// Package services implements the reservation data-access contract: the
// train catalog, role-scoped user accounts, and the booking history. Every
// operation acquires its own connection, prepares a statement, binds
// positionally, and releases the statement on every exit path.
//
// Two return disciplines coexist deliberately. Mutating operations return a
// status string (SUCCESS, FAILURE, or "FAILURE: <message>") and never return
// an error; read-style operations and login return *domain.ServiceError.
// This file holds the helpers both disciplines share.
package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/domain"
)

// statusSeparator joins FAILURE with an underlying message.
const statusSeparator = ": "

// failureStatus folds an underlying failure into the textual status form.
func failureStatus(err error) string {
	return domain.CodeFailure.String() + statusSeparator + err.Error()
}

// mysqlDuplicateEntry is the server error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

// oraDuplicateEntry is the legacy marker still honored for callers that
// front an Oracle schema.
const oraDuplicateEntry = "ORA-00001"

// isDuplicateKey reports whether err is an integrity violation on a unique
// key, either as classified by the driver or by the legacy message marker.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return true
	}
	return strings.Contains(err.Error(), oraDuplicateEntry)
}
