package domain

import (
	"errors"
	"testing"
)

func TestNewServiceError_CarriesCode(t *testing.T) {
	err := NewServiceError(CodeUnauthorized)
	if err.Error() != "UNAUTHORIZED" {
		t.Fatalf("Error() = %q; want %q", err.Error(), "UNAUTHORIZED")
	}
}

func TestWrapServiceError(t *testing.T) {
	cause := errors.New("DB Error")
	err := WrapServiceError(cause)
	if err == nil || err.Error() != "DB Error" {
		t.Fatalf("WrapServiceError(%v) = %v; want message preserved", cause, err)
	}
}

func TestWrapServiceError_Nil(t *testing.T) {
	if err := WrapServiceError(nil); err != nil {
		t.Fatalf("WrapServiceError(nil) = %v; want nil", err)
	}
}

func TestWrapServiceError_Idempotent(t *testing.T) {
	orig := NewServiceError(CodeNoContent)
	if got := WrapServiceError(orig); got != orig {
		t.Fatalf("wrapping a ServiceError must return it unchanged")
	}
}
