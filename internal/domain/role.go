package domain

// UserRole selects which physical account table a user service addresses.
// The textual form of the role is the table name, so only values of this
// closed enumeration may ever be concatenated into SQL.
type UserRole string

// Known roles. The zero value resolves to CUSTOMER.
const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether r is one of the enumerated roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// TableName returns the physical table addressed by this role. Anything
// outside the enumeration (including the zero value) maps to the CUSTOMER
// table, so an arbitrary string can never reach query composition.
func (r UserRole) TableName() string {
	if !r.Valid() {
		return string(RoleCustomer)
	}
	return string(r)
}
