package authenticator

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ConfigurationError is returned when a required client setting is absent.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// ErrorKind classifies a failed token exchange.
type ErrorKind string

const (
	KindTimeout       ErrorKind = "timeout"
	KindHTTPStatus    ErrorKind = "http_status"
	KindResponseParse ErrorKind = "response_parse"
	KindTransport     ErrorKind = "transport"
)

// Sentinels matched by errors.Is against a *TokenExchangeError of the same kind.
var (
	ErrTimeout       = errors.New("token exchange timed out")
	ErrHTTPStatus    = errors.New("token endpoint returned an error status")
	ErrResponseParse = errors.New("token endpoint returned an invalid response")
	ErrTransport     = errors.New("token endpoint unreachable")
)

// ErrResponseTooLarge is the cause of an exchange error whose response body
// exceeded the read limit. Body then holds only the first part.
var ErrResponseTooLarge = errors.New("token response too large")

// TokenExchangeError describes why an exchange failed. StatusCode and Body
// are set whenever a response was received.
type TokenExchangeError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *TokenExchangeError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TokenExchangeError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *TokenExchangeError) Is(target error) bool {
	switch e.Kind {
	case KindTimeout:
		return target == ErrTimeout
	case KindHTTPStatus:
		return target == ErrHTTPStatus
	case KindResponseParse:
		return target == ErrResponseParse
	case KindTransport:
		return target == ErrTransport
	}
	return false
}

func newTimeoutError(after time.Duration) *TokenExchangeError {
	return &TokenExchangeError{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("token exchange timed out after %s", after),
	}
}

func newHTTPStatusError(status int, body []byte) *TokenExchangeError {
	return &TokenExchangeError{
		Kind:       KindHTTPStatus,
		Message:    "token request failed",
		StatusCode: status,
		Body:       string(body),
	}
}

func newParseError(status int, body []byte, cause error) *TokenExchangeError {
	return &TokenExchangeError{
		Kind:       KindResponseParse,
		Message:    "failed to decode token response",
		StatusCode: status,
		Body:       string(body),
		Err:        cause,
	}
}

// newOversizedError keeps the status kind for error responses; an oversized
// 200 cannot be decoded and is a parse error.
func newOversizedError(status int, truncated []byte) *TokenExchangeError {
	cause := fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxResponseBytes)
	if status != http.StatusOK {
		e := newHTTPStatusError(status, truncated)
		e.Err = cause
		return e
	}
	return newParseError(status, truncated, cause)
}

func newTransportError(message string, cause error) *TokenExchangeError {
	return &TokenExchangeError{
		Kind:    KindTransport,
		Message: message,
		Err:     cause,
	}
}
