package gateway

import (
	"errors"
	"fmt"
)

// GatewayError is the single failure type surfaced by Billing
// implementations. It carries the HTTP status and raw body of the platform
// response when one was received; callers are not expected to inspect
// anything beyond existence and the NotFound kind.
type GatewayError struct {
	// Op names the failing operation, e.g. "create customer".
	Op string
	// StatusCode is the HTTP status of the platform response, zero when the
	// request never produced one.
	StatusCode int
	// Body is the raw platform error body or message.
	Body string
	// NotFound marks a platform "no such resource" response as opposed to a
	// transport or authorization failure.
	NotFound bool
	// Err is the underlying cause.
	Err error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway: %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway: %s", e.Op)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a GatewayError of the not-found kind.
func IsNotFound(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.NotFound
}
