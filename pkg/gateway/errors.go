package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies a gateway failure.
type Kind string

const (
	// KindConnectivity is a transport-level failure reaching the upstream host:
	// DNS failure, connection refusal, or the per-request timeout.
	KindConnectivity Kind = "connectivity"
	// KindUpstreamRejection is a non-2xx HTTP status, or a 2xx body that
	// explicitly signals failure with ok:false.
	KindUpstreamRejection Kind = "upstream_rejection"
	// KindInvalidArgument is a locally detected precondition violation,
	// raised before any network call is made.
	KindInvalidArgument Kind = "invalid_argument"
	// KindUnexpected is any other failure during request or response handling.
	KindUnexpected Kind = "unexpected"
)

// Error is a classified gateway failure. StatusCode is set only for
// KindUpstreamRejection raised from an HTTP status.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string

	cause error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the classified kind of err, or KindUnexpected
// when err did not originate from the gateway.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnexpected
}

func connectivityError(err error) *Error {
	return &Error{
		Kind:   KindConnectivity,
		Detail: fmt.Sprintf("Connection Error: Could not reach GiftAsset API. %s", err),
		cause:  err,
	}
}

// rejectionJSONError is raised for a 4xx/5xx response whose body parsed as JSON.
func rejectionJSONError(statusCode int, body any) *Error {
	bs, _ := json.Marshal(body)
	return &Error{
		Kind:       KindUpstreamRejection,
		StatusCode: statusCode,
		Detail:     fmt.Sprintf("API Error %d: %s", statusCode, bs),
	}
}

// rejectionTextError is raised for a 4xx/5xx response whose body is not JSON.
func rejectionTextError(statusCode int, body string) *Error {
	return &Error{
		Kind:       KindUpstreamRejection,
		StatusCode: statusCode,
		Detail:     fmt.Sprintf("HTTP Error %d: %s", statusCode, body),
	}
}

// rejectionNotOKError is raised for a 2xx response carrying ok:false.
func rejectionNotOKError(description string) *Error {
	return &Error{
		Kind:   KindUpstreamRejection,
		Detail: fmt.Sprintf("API Error: %s", description),
	}
}

func invalidArgumentError(msg string) *Error {
	return &Error{
		Kind:   KindInvalidArgument,
		Detail: msg,
	}
}

func unexpectedError(err error) *Error {
	return &Error{
		Kind:   KindUnexpected,
		Detail: fmt.Sprintf("Unexpected Error: %s", err),
		cause:  err,
	}
}
