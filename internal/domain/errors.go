package domain

// ServiceError is the single error type surfaced by the data-access layer.
// Its payload is exactly one string: either the textual form of a
// ResponseCode or the message of an underlying driver failure. Callers that
// need to distinguish outcomes compare the message against the catalog.
type ServiceError struct {
	Message string
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Message }

// NewServiceError builds a ServiceError carrying a response code.
func NewServiceError(code ResponseCode) *ServiceError {
	return &ServiceError{Message: code.String()}
}

// WrapServiceError folds an underlying failure into a ServiceError,
// preserving its message. A nil cause yields a nil error.
func WrapServiceError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ServiceError); ok {
		return se
	}
	return &ServiceError{Message: err.Error()}
}
