package app

import "errors"

// Typed errors for the onboarding app layer. These enable callers to map
// outcomes without relying on SDK-specific error types.
var (

	// ErrConfiguration indicates a required run setting is missing or
	// invalid. It aborts the whole run before any record is touched.
	ErrConfiguration = errors.New("configuration error")
	// ErrGateway indicates a failure from a billing platform call. It fails
	// only the current record.
	ErrGateway = errors.New("gateway error")
	// ErrNotFound indicates the configured product, or a matching price, is
	// absent on the platform. It fails only the current record.
	ErrNotFound = errors.New("not found")
)
