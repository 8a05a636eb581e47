package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/models"
	"github.com/blogem/emma-oauth/repositories"
	"github.com/blogem/emma-oauth/security"
)

// Limits for RecentExchanges
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

var (
	// ErrStateMismatch is returned when the callback state cannot be tied to a login.
	ErrStateMismatch = errors.New("state parameter does not match the login request")

	// ErrMissingCode is returned when the callback carries no authorization code.
	ErrMissingCode = errors.New("authorization code is missing")

	// ErrStateStore is returned when the pending login could not be looked up.
	// The callback may have been valid, so it is not a state mismatch.
	ErrStateStore = errors.New("state store unavailable")

	// ErrExchangeNotFound is returned by GetExchange for an unknown id.
	ErrExchangeNotFound = errors.New("exchange not found")
)

// LoginService interface defines the login flow business logic
type LoginService interface {
	BeginLogin(ctx context.Context, req LoginRequest) (*LoginStart, error)
	CompleteLogin(ctx context.Context, cb LoginCallback) (*authenticator.TokenExchangeResult, error)
	RecentExchanges(ctx context.Context, limit int) (*models.ExchangeSummary, error)
	GetExchange(ctx context.Context, id string) (*models.ExchangeRecord, error)
	PurgeExpiredStates(ctx context.Context) (int64, error)
}

// LoginOptions configures state handling
type LoginOptions struct {
	// VerifyState requires the callback state to match a pending login.
	VerifyState bool

	// StateTTL is how long a pending login stays valid.
	StateTTL time.Duration
}

// LoginRequest identifies the client starting a login
type LoginRequest struct {
	RequestID string
	ClientIP  string
}

// LoginStart is the result of BeginLogin
type LoginStart struct {
	URL       string
	State     string
	ExpiresAt time.Time
}

// LoginCallback carries what the provider redirect delivered
type LoginCallback struct {
	Code          string
	State         string
	ExpectedState string
	RequestID     string
	ClientIP      string
}

// loginService implements LoginService interface
type loginService struct {
	provider      authenticator.Provider
	states        repositories.StateRepository
	exchanges     repositories.ExchangeRepository
	metrics       *instrumentation.Metrics
	tracer        trace.Tracer
	auditor       *security.Auditor
	logger        *slog.Logger
	opts          LoginOptions
	now           func() time.Time
	generateState func() (string, error)
}

// NewLoginService creates a new login service
func NewLoginService(
	provider authenticator.Provider,
	states repositories.StateRepository,
	exchanges repositories.ExchangeRepository,
	inst *instrumentation.Instrumentation,
	auditor *security.Auditor,
	logger *slog.Logger,
	opts LoginOptions,
) LoginService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StateTTL <= 0 {
		opts.StateTTL = 10 * time.Minute
	}

	s := &loginService{
		provider:      provider,
		states:        states,
		exchanges:     exchanges,
		auditor:       auditor,
		logger:        logger,
		opts:          opts,
		now:           time.Now,
		generateState: authenticator.GenerateState,
	}
	if inst == nil {
		// Tracer and metrics fall back to no-ops.
		inst, _ = instrumentation.New(instrumentation.Config{})
	}
	s.metrics = inst.Metrics()
	s.tracer = inst.Tracer("services")
	return s
}

// BeginLogin generates a state, stores it when verification is enabled and
// returns the provider authorization URL
func (s *loginService) BeginLogin(ctx context.Context, req LoginRequest) (*LoginStart, error) {
	ctx, span := s.tracer.Start(ctx, instrumentation.SpanBeginLogin)
	defer span.End()

	state, err := s.generateState()
	if err != nil {
		instrumentation.RecordError(span, err)
		return nil, err
	}

	now := s.now().UTC()
	start := &LoginStart{
		State:     state,
		ExpiresAt: now.Add(s.opts.StateTTL),
	}

	if s.opts.VerifyState {
		err := s.states.Create(ctx, &models.AuthorizationState{
			State:     state,
			CreatedAt: now,
			ExpiresAt: start.ExpiresAt,
		})
		if err != nil {
			instrumentation.RecordError(span, err)
			return nil, fmt.Errorf("failed to store state: %w", err)
		}
	}

	start.URL = s.provider.AuthorizationURL(state)

	s.metrics.RecordAuthorizationStarted(ctx)
	s.auditor.LogLoginStarted(req.RequestID, req.ClientIP, state)
	instrumentation.SetSpanSuccess(span)
	return start, nil
}

// CompleteLogin verifies the callback and exchanges the code for a token
func (s *loginService) CompleteLogin(ctx context.Context, cb LoginCallback) (*authenticator.TokenExchangeResult, error) {
	ctx, span := s.tracer.Start(ctx, instrumentation.SpanExchangeCode)
	defer span.End()

	if cb.Code == "" {
		instrumentation.RecordError(span, ErrMissingCode)
		return nil, ErrMissingCode
	}

	if s.opts.VerifyState {
		reason, err := s.verifyState(ctx, cb)
		switch {
		case errors.Is(err, ErrStateStore):
			s.logger.ErrorContext(ctx, "Failed to look up callback state", "error", err)
			instrumentation.RecordError(span, err)
			return nil, err
		case err != nil:
			s.logger.WarnContext(ctx, "Rejected callback state", "reason", reason, "error", err)
			s.auditor.LogStateMismatch(cb.RequestID, cb.ClientIP, reason)
			s.record(ctx, cb, models.OutcomeStateMismatch, nil, 0, 0)
			s.metrics.RecordCodeExchanged(ctx, string(models.OutcomeStateMismatch), false, 0)
			instrumentation.SetOutcome(span, string(models.OutcomeStateMismatch), 0)
			instrumentation.RecordError(span, ErrStateMismatch)
			return nil, fmt.Errorf("%w: %s", ErrStateMismatch, reason)
		}
	}

	started := s.now()
	result, err := s.provider.ExchangeCode(ctx, cb.Code)
	elapsed := s.now().Sub(started)

	outcome, statusCode := classifyExchange(err)
	s.record(ctx, cb, outcome, result, statusCode, elapsed)
	s.metrics.RecordCodeExchanged(ctx, string(outcome), true, float64(elapsed.Microseconds())/1000)
	instrumentation.SetOutcome(span, string(outcome), statusCode)

	if err != nil {
		s.auditor.LogExchangeFailed(cb.RequestID, cb.ClientIP, string(outcome), statusCode)
		instrumentation.RecordError(span, err)
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	s.auditor.LogTokenExchanged(cb.RequestID, cb.ClientIP, result.AccountID)
	instrumentation.SetSpanSuccess(span)
	return result, nil
}

// verifyState returns a short reason and ErrStateMismatch when the callback
// state is not acceptable, or ErrStateStore when it could not be checked.
func (s *loginService) verifyState(ctx context.Context, cb LoginCallback) (string, error) {
	if cb.State == "" || cb.ExpectedState == "" {
		return "missing", ErrStateMismatch
	}
	if subtle.ConstantTimeCompare([]byte(cb.State), []byte(cb.ExpectedState)) != 1 {
		return "mismatch", ErrStateMismatch
	}

	stored, err := s.states.Consume(ctx, cb.State)
	if errors.Is(err, repositories.ErrNotFound) {
		return "unknown", ErrStateMismatch
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStateStore, err)
	}
	if stored.Expired(s.now()) {
		return "expired", ErrStateMismatch
	}
	return "", nil
}

// record persists exchange metadata. Failures are logged and do not fail the login.
func (s *loginService) record(ctx context.Context, cb LoginCallback, outcome models.ExchangeOutcome, result *authenticator.TokenExchangeResult, statusCode int, elapsed time.Duration) {
	record := &models.ExchangeRecord{
		RequestID:  cb.RequestID,
		StateHash:  security.HashForLogging(cb.State),
		Outcome:    outcome,
		StatusCode: statusCode,
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  s.now().UTC(),
	}
	if result != nil {
		record.AccountID = result.AccountID
	}
	if err := s.exchanges.Create(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record exchange", "outcome", outcome, "error", err)
	}
}

// classifyExchange maps an exchange error to its outcome and provider status code.
func classifyExchange(err error) (models.ExchangeOutcome, int) {
	if err == nil {
		return models.OutcomeSucceeded, 200
	}

	var exErr *authenticator.TokenExchangeError
	if !errors.As(err, &exErr) {
		return models.OutcomeTransportError, 0
	}

	switch exErr.Kind {
	case authenticator.KindTimeout:
		return models.OutcomeTimedOut, exErr.StatusCode
	case authenticator.KindHTTPStatus:
		return models.OutcomeHTTPError, exErr.StatusCode
	case authenticator.KindResponseParse:
		return models.OutcomeParseError, exErr.StatusCode
	default:
		return models.OutcomeTransportError, exErr.StatusCode
	}
}

// RecentExchanges returns the latest exchange records and per-outcome totals
func (s *loginService) RecentExchanges(ctx context.Context, limit int) (*models.ExchangeSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	recent, err := s.exchanges.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	counts, err := s.exchanges.CountByOutcome(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[models.ExchangeOutcome]int64, len(models.Outcomes))
	for _, outcome := range models.Outcomes {
		totals[outcome] = counts[outcome]
	}

	return &models.ExchangeSummary{Recent: recent, Totals: totals}, nil
}

// GetExchange returns a single exchange record by id
func (s *loginService) GetExchange(ctx context.Context, id string) (*models.ExchangeRecord, error) {
	record, err := s.exchanges.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrExchangeNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// PurgeExpiredStates deletes pending logins whose state has expired
func (s *loginService) PurgeExpiredStates(ctx context.Context) (int64, error) {
	return s.states.DeleteExpired(ctx, s.now())
}
