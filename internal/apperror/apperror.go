// Package apperror defines the failure kinds shared by every pipeline stage.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindDecode            Kind = "decode_error"
	KindTranscode         Kind = "transcode_error"
	KindInvalidLanguage   Kind = "invalid_language"
	KindUpstream          Kind = "upstream_error"
	KindMalformedResponse Kind = "malformed_response"
	KindUnauthorized      Kind = "unauthorized"
	KindTransport         Kind = "transport_error"
)

// Error is a typed stage failure. Service, Status and Body are only set for
// failures that involve an upstream service; they are meant for logs.
type Error struct {
	Kind    Kind
	Service string
	Status  int
	Body    string
	Msg     string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUpstream:
		return fmt.Sprintf("%s: %s responded %d: %s", e.Kind, e.Service, e.Status, e.Body)
	}

	msg := string(e.Kind)
	if e.Service != "" {
		msg += ": " + e.Service
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func Decode(err error) error {
	return &Error{Kind: KindDecode, Err: err}
}

// Transcode carries the converter's diagnostic output verbatim.
func Transcode(diagnostics string, err error) error {
	return &Error{Kind: KindTranscode, Msg: diagnostics, Err: err}
}

func InvalidLanguage(code string) error {
	return &Error{Kind: KindInvalidLanguage, Msg: fmt.Sprintf("%q", code)}
}

func Upstream(service string, status int, body string) error {
	return &Error{Kind: KindUpstream, Service: service, Status: status, Body: body}
}

func Malformed(service, msg string) error {
	return &Error{Kind: KindMalformedResponse, Service: service, Msg: msg}
}

func Unauthorized(reason string) error {
	return &Error{Kind: KindUnauthorized, Msg: reason}
}

func Transport(service string, err error) error {
	return &Error{Kind: KindTransport, Service: service, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
