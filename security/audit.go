// Package security provides audit logging and rate limiting for the login flow.
package security

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"
)

// Auditor handles security event logging. State values and account ids are
// hashed before they reach the log.
type Auditor struct {
	logger  *slog.Logger
	enabled bool
	now     func() time.Time
}

// NewAuditor creates a new security auditor
func NewAuditor(logger *slog.Logger, enabled bool) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{
		logger:  logger,
		enabled: enabled,
		now:     time.Now,
	}
}

// Event represents a security audit event
type Event struct {
	Type      string
	RequestID string
	IPAddress string
	Details   map[string]any
	Timestamp time.Time
}

// LogEvent logs a security event
func (a *Auditor) LogEvent(event Event) {
	if a == nil || !a.enabled {
		return
	}

	event.Timestamp = a.now()

	a.logger.Info("security_audit",
		"event_type", event.Type,
		"request_id", event.RequestID,
		"ip_address", event.IPAddress,
		"details", event.Details,
		"timestamp", event.Timestamp,
	)
}

// LogLoginStarted logs a new authorization redirect
func (a *Auditor) LogLoginStarted(requestID, ipAddress, state string) {
	a.LogEvent(Event{
		Type:      "login_started",
		RequestID: requestID,
		IPAddress: ipAddress,
		Details: map[string]any{
			"state_hash": HashForLogging(state),
		},
	})
}

// LogTokenExchanged logs a successful code exchange
func (a *Auditor) LogTokenExchanged(requestID, ipAddress, accountID string) {
	a.LogEvent(Event{
		Type:      "token_exchanged",
		RequestID: requestID,
		IPAddress: ipAddress,
		Details: map[string]any{
			"account_id_hash": HashForLogging(accountID),
		},
	})
}

// LogExchangeFailed logs a failed code exchange
func (a *Auditor) LogExchangeFailed(requestID, ipAddress, outcome string, statusCode int) {
	a.LogEvent(Event{
		Type:      "exchange_failed",
		RequestID: requestID,
		IPAddress: ipAddress,
		Details: map[string]any{
			"outcome":     outcome,
			"status_code": statusCode,
		},
	})
}

// LogStateMismatch logs a callback whose state does not match the login
func (a *Auditor) LogStateMismatch(requestID, ipAddress, reason string) {
	a.LogEvent(Event{
		Type:      "state_mismatch",
		RequestID: requestID,
		IPAddress: ipAddress,
		Details: map[string]any{
			"reason": reason,
		},
	})
}

// LogRateLimitExceeded logs a rate limit violation
func (a *Auditor) LogRateLimitExceeded(requestID, ipAddress string) {
	a.LogEvent(Event{
		Type:      "rate_limit_exceeded",
		RequestID: requestID,
		IPAddress: ipAddress,
	})
}

// HashForLogging returns a short sha256 prefix of value, or "" for an empty value.
func HashForLogging(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:16]
}
