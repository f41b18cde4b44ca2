package domain

// ResponseCode is the closed set of outcome tags used by the services.
// Its textual form is stable: mutating operations return it verbatim as a
// status string, and read operations use it as the payload of a ServiceError.
type ResponseCode string

// The full catalog. Callers compare these textually.
const (
	CodeSuccess             ResponseCode = "SUCCESS"
	CodeFailure             ResponseCode = "FAILURE"
	CodeInternalServerError ResponseCode = "INTERNAL_SERVER_ERROR"
	CodeNoContent           ResponseCode = "NO_CONTENT"
	CodeUnauthorized        ResponseCode = "UNAUTHORIZED"
)

// String returns the stable textual form of the code.
func (c ResponseCode) String() string { return string(c) }

// Message returns a human-readable description of the outcome.
func (c ResponseCode) Message() string {
	switch c {
	case CodeSuccess:
		return "Request Served Successfully"
	case CodeFailure:
		return "Request Could Not be Processed"
	case CodeInternalServerError:
		return "Internal Server Error"
	case CodeNoContent:
		return "No Content Available"
	case CodeUnauthorized:
		return "Access Denied, Invalid Credentials"
	}
	return string(c)
}

// Status maps the code onto the usual HTTP-style numeric status.
func (c ResponseCode) Status() int {
	switch c {
	case CodeSuccess:
		return 200
	case CodeNoContent:
		return 204
	case CodeUnauthorized:
		return 401
	case CodeFailure:
		return 422
	case CodeInternalServerError:
		return 500
	}
	return 500
}
