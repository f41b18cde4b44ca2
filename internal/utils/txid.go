// Package utils provides small shared helpers. This file contains the
// transaction identifier generator used by the booking history service.
package utils

import "github.com/google/uuid"

// NewTransactionID returns a fresh opaque transaction identifier in the
// 36-character canonical UUIDv4 form. Safe for concurrent use; two calls in
// the same process collide only with negligible probability.
func NewTransactionID() string {
	return uuid.NewString()
}
