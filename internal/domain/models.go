// Package domain defines the value records persisted by the reservation
// data layer, together with the role and response-code enumerations and the
// single error type the services surface. The structs carry `db` tags that
// match the physical column names exactly; row decoding relies on them.
package domain

import "github.com/shopspring/decimal"

// Train represents one row of the train catalog.
//
// Fields:
//   - Number: train number, the primary key.
//   - Name: display name of the train.
//   - FromStation / ToStation: origin and destination stations.
//   - Seats: total seat capacity (never negative).
//   - Fare: ticket fare as an exact decimal (never negative).
type Train struct {
	Number      int64           `json:"trainNo"   db:"tr_no"`
	Name        string          `json:"trainName" db:"tr_name"`
	FromStation string          `json:"fromStn"   db:"from_stn"`
	ToStation   string          `json:"toStn"     db:"to_stn"`
	Seats       int             `json:"seats"     db:"seats"`
	Fare        decimal.Decimal `json:"fare"      db:"fare"`
}

// User represents one account row. The physical table the row lives in is
// selected by the UserRole the service was constructed with; the mail id is
// the primary key within that table.
//
// Password is stored and compared verbatim to preserve the observable
// contract of the system being replaced; see DESIGN.md before relying on it.
type User struct {
	MailID    string `json:"mailId" db:"mailid"`
	Password  string `json:"-"      db:"pword"`
	FirstName string `json:"fname"  db:"fname"`
	LastName  string `json:"lname"  db:"lname"`
	Address   string `json:"addr"   db:"addr"`
	Phone     int64  `json:"phNo"   db:"phno"`
}

// HistoryEntry represents one immutable booking record.
//
// Fields:
//   - TransactionID: opaque unique id assigned by the booking service on
//     creation; empty on input.
//   - MailID: customer the booking belongs to.
//   - TrainNo: booked train, kept as a string in history rows.
//   - Date: journey date in ISO form (YYYY-MM-DD).
//   - FromStation / ToStation: journey endpoints.
//   - Seats: number of seats booked (positive).
//   - Amount: total charged amount as an exact decimal.
type HistoryEntry struct {
	TransactionID string          `json:"transId" db:"transid"`
	MailID        string          `json:"mailId"  db:"mailid"`
	TrainNo       string          `json:"trainNo" db:"tr_no"`
	Date          string          `json:"date"    db:"date"`
	FromStation   string          `json:"fromStn" db:"from_stn"`
	ToStation     string          `json:"toStn"   db:"to_stn"`
	Seats         int             `json:"seats"   db:"seats"`
	Amount        decimal.Decimal `json:"amount"  db:"amount"`
}
