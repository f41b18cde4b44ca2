package domain

import "testing"

func TestResponseCode_String(t *testing.T) {
	cases := map[ResponseCode]string{
		CodeSuccess:             "SUCCESS",
		CodeFailure:             "FAILURE",
		CodeInternalServerError: "INTERNAL_SERVER_ERROR",
		CodeNoContent:           "NO_CONTENT",
		CodeUnauthorized:        "UNAUTHORIZED",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	}
}

func TestResponseCode_Status(t *testing.T) {
	cases := map[ResponseCode]int{
		CodeSuccess:             200,
		CodeNoContent:           204,
		CodeUnauthorized:        401,
		CodeFailure:             422,
		CodeInternalServerError: 500,
		ResponseCode("UNKNOWN"): 500,
	}
	for code, want := range cases {
		if got := code.Status(); got != want {
			t.Errorf("%s.Status() = %d; want %d", code, got, want)
		}
	}
}

func TestResponseCode_Message_UnknownFallsBack(t *testing.T) {
	c := ResponseCode("TEAPOT")
	if got := c.Message(); got != "TEAPOT" {
		t.Fatalf("Message() = %q; want the raw code", got)
	}
}

func TestResponseCode_Message_Known(t *testing.T) {
	for _, c := range []ResponseCode{CodeSuccess, CodeFailure, CodeInternalServerError, CodeNoContent, CodeUnauthorized} {
		if c.Message() == "" || c.Message() == string(c) {
			t.Errorf("%s has no human-readable message", c)
		}
	}
}
