package models

import "time"

// ExchangeOutcome is the terminal state of one callback handled by the service.
type ExchangeOutcome string

const (
	OutcomeSucceeded      ExchangeOutcome = "succeeded"
	OutcomeTimedOut       ExchangeOutcome = "timed_out"
	OutcomeHTTPError      ExchangeOutcome = "http_error"
	OutcomeParseError     ExchangeOutcome = "parse_error"
	OutcomeTransportError ExchangeOutcome = "transport_error"
	OutcomeStateMismatch  ExchangeOutcome = "state_mismatch"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []ExchangeOutcome{
	OutcomeSucceeded,
	OutcomeTimedOut,
	OutcomeHTTPError,
	OutcomeParseError,
	OutcomeTransportError,
	OutcomeStateMismatch,
}

// ExchangeRecord is the persisted metadata of a code exchange attempt.
// Tokens and secrets are never stored.
type ExchangeRecord struct {
	ID         string          `json:"id"`
	RequestID  string          `json:"request_id,omitempty"`
	StateHash  string          `json:"state_hash,omitempty"`
	Outcome    ExchangeOutcome `json:"outcome"`
	AccountID  string          `json:"account_id,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuthorizationState is a pending login waiting for its callback.
type AuthorizationState struct {
	State     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the state is past its expiry at now.
func (s *AuthorizationState) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
