// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHandleDeleted is returned by accessors on a handle whose remote
// object was deleted through this library. The handle keeps failing
// rather than refetching a document that no longer exists.
var ErrHandleDeleted = errors.New("trello: object was deleted through this handle")

// TransportError represents a failed exchange with the Trello API: a
// non-2xx response, or a request that never produced one. Trello error
// bodies are usually plain text ("invalid key"), occasionally JSON with
// a message field; both are preserved.
type TransportError struct {
	// StatusCode is the HTTP response status code. Zero when the
	// request failed before a response arrived.
	StatusCode int

	// Method and Path identify the request that failed. Path is the
	// service path without the version prefix or query string.
	Method string
	Path   string

	// Message is the error description extracted from the response
	// body, or the raw body text when no structured message exists.
	// For requests that failed before a response, it describes the
	// network failure.
	Message string

	// Body is the raw response body.
	Body []byte

	cause error
}

func (err *TransportError) Error() string {
	var builder strings.Builder
	if err.StatusCode == 0 {
		fmt.Fprintf(&builder, "trello: %s %s: request failed", err.Method, err.Path)
	} else {
		fmt.Fprintf(&builder, "trello: %s %s: HTTP %d", err.Method, err.Path, err.StatusCode)
	}
	if err.Message != "" {
		fmt.Fprintf(&builder, ": %s", err.Message)
	}
	return builder.String()
}

// Unwrap exposes the underlying network error, if any, so that
// errors.Is can see context cancellation through a TransportError.
func (err *TransportError) Unwrap() error {
	return err.cause
}

// UnknownFieldError reports a field name that neither the kind's schema
// nor the fetched document knows about.
type UnknownFieldError struct {
	Kind  Kind
	Field string
}

func (err *UnknownFieldError) Error() string {
	return fmt.Sprintf("trello: %s has no field %q", err.Kind, err.Field)
}

// MalformedDateError reports a date field whose raw value could not be
// parsed as an RFC 3339 timestamp.
type MalformedDateError struct {
	Kind  Kind
	Field string

	// Value is the raw value the service returned for the field.
	Value string

	cause error
}

func (err *MalformedDateError) Error() string {
	return fmt.Sprintf("trello: %s field %q: malformed date %q", err.Kind, err.Field, err.Value)
}

func (err *MalformedDateError) Unwrap() error {
	return err.cause
}

// TypeCoercionError reports a field whose raw value does not have, and
// cannot be converted to, the type its resolver declares.
type TypeCoercionError struct {
	Kind  Kind
	Field string

	// Want names the expected Go type.
	Want string

	// Value is the raw value the service returned for the field.
	Value any
}

func (err *TypeCoercionError) Error() string {
	return fmt.Sprintf("trello: %s field %q: cannot convert %T (%v) to %s", err.Kind, err.Field, err.Value, err.Value, err.Want)
}

// InvalidArgumentError reports a mutation argument outside its declared
// domain, such as an unrecognized label color. The request is never
// sent.
type InvalidArgumentError struct {
	// Op is the operation that rejected the argument.
	Op string

	// Argument names the offending parameter and Value holds what the
	// caller passed.
	Argument string
	Value    string

	// Allowed lists the accepted values, when the domain is a fixed
	// enumeration.
	Allowed []string
}

func (err *InvalidArgumentError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "trello: %s: invalid %s %q", err.Op, err.Argument, err.Value)
	if len(err.Allowed) > 0 {
		fmt.Fprintf(&builder, " (valid: %s)", strings.Join(err.Allowed, ", "))
	}
	return builder.String()
}

// IsNotFound reports whether err is a Trello API 404 Not Found response.
func IsNotFound(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError) && transportError.StatusCode == 404
}

// IsRateLimited reports whether err is a Trello API 429 rate limit
// response.
func IsRateLimited(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError) && transportError.StatusCode == 429
}

// IsUnauthorized reports whether err is a Trello API 401 response,
// which the service returns for missing or revoked credentials.
func IsUnauthorized(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError) && transportError.StatusCode == 401
}

// IsUnknownField reports whether err came from asking a handle for a
// field its kind does not define.
func IsUnknownField(err error) bool {
	var unknownFieldError *UnknownFieldError
	return errors.As(err, &unknownFieldError)
}
