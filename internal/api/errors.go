package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind tags the three failure classes an API call can produce.
type Kind int

const (
	// KindHTTP means the backend answered with a non-2xx status.
	KindHTTP Kind = iota + 1
	// KindNetwork means the request was sent but no response arrived
	// (connection refused, timeout, DNS failure).
	KindNetwork
	// KindLocal means the request could not be constructed or sent.
	KindLocal
)

// Error is the tagged error returned by every failing API call.
// Exactly one shape applies per Kind: KindHTTP carries Status, Body and
// the backend message; KindNetwork and KindLocal carry the underlying
// error only.
type Error struct {
	Kind   Kind
	Status int
	// Body is the raw response body of an HTTP failure.
	Body json.RawMessage
	// Msg is the backend-provided human-readable message (data.msg),
	// when present.
	Msg string
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		if e.Msg != "" {
			return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Msg)
		}
		return fmt.Sprintf("api: HTTP %d", e.Status)
	case KindNetwork:
		return fmt.Sprintf("api: network error: %v", e.Err)
	default:
		return fmt.Sprintf("api: request error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsAuthError reports whether err is an HTTP 401 failure.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindHTTP && apiErr.Status == http.StatusUnauthorized
}

// IsNetworkError reports whether the request never received a response.
func IsNetworkError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// HandleError extracts a user-displayable message from an API call
// failure. It prefers the backend-provided message, falls back to a
// fixed network message for connectivity failures, and otherwise uses
// the error text or the given fallback.
func HandleError(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindHTTP:
			if apiErr.Msg != "" {
				return apiErr.Msg
			}
			return fallback
		case KindNetwork:
			return "network connection failed, please check your network"
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
