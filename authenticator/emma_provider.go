package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Compile-time check that EmmaProvider implements the Provider interface.
var _ Provider = (*EmmaProvider)(nil)

// providerName is the name returned by EmmaProvider.Name().
const providerName = "emma"

// maxResponseBytes caps how much of a token response is read.
const maxResponseBytes = 1 << 20

// EmmaProvider implements the Provider interface for Emma
type EmmaProvider struct {
	config     Config
	oauth      *oauth2.Config
	httpClient *http.Client
}

// NewEmmaProvider creates a new Emma provider with the given configuration
func NewEmmaProvider(cfg Config) (*EmmaProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	// The exchange arms its own timer, so the client carries no timeout.
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &EmmaProvider{
		config:     cfg,
		oauth:      cfg.oauth2Config(),
		httpClient: httpClient,
	}, nil
}

// Name returns the provider name.
func (p *EmmaProvider) Name() string {
	return providerName
}

// Config returns a copy of the provider configuration.
func (p *EmmaProvider) Config() Config {
	return p.config
}

// AuthorizationURL returns the Emma authorization URL for state
func (p *EmmaProvider) AuthorizationURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// BuildAuthorizationURL returns the authorization URL for cfg and state.
// The query carries client_id, redirect_uri, response_type=code and state.
func BuildAuthorizationURL(cfg Config, state string) string {
	return cfg.withDefaults().oauth2Config().AuthCodeURL(state)
}

// exchangeOutcome is what the request goroutine hands back to ExchangeCode.
type exchangeOutcome struct {
	result *TokenExchangeResult
	err    error
}

// ExchangeCode exchanges an authorization code for an access token.
//
// The call settles exactly once: the request goroutine writes into a
// one-slot channel that is read at most once, so a response arriving after
// the timer fired is dropped.
func (p *EmmaProvider) ExchangeCode(ctx context.Context, code string) (*TokenExchangeResult, error) {
	body := p.tokenRequestBody(code)

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, p.oauth.Endpoint.TokenURL, strings.NewReader(body))
	if err != nil {
		return nil, newTransportError("failed to create token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.ContentLength = int64(len(body))

	timer := time.NewTimer(p.config.Timeout)
	defer timer.Stop()

	done := make(chan exchangeOutcome, 1)
	go func() {
		result, err := p.roundTrip(req)
		done <- exchangeOutcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-timer.C:
		cancel()
		return nil, newTimeoutError(p.config.Timeout)
	case <-ctx.Done():
		return nil, newTransportError("token exchange cancelled", ctx.Err())
	}
}

func (p *EmmaProvider) tokenRequestBody(code string) string {
	form := url.Values{}
	form.Set("client_id", p.config.APIKey)
	form.Set("client_secret", p.config.SharedSecret)
	form.Set("redirect_uri", p.config.RedirectURI)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	return form.Encode()
}

func (p *EmmaProvider) roundTrip(req *http.Request) (*TokenExchangeResult, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError("token request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// One byte past the cap tells an oversized body from one that fits exactly.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		tErr := newTransportError("failed to read token response", err)
		tErr.StatusCode = resp.StatusCode
		return nil, tErr
	}

	if len(raw) > maxResponseBytes {
		return nil, newOversizedError(resp.StatusCode, raw[:maxResponseBytes])
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newHTTPStatusError(resp.StatusCode, raw)
	}

	return decodeTokenResponse(resp.StatusCode, raw)
}

// tokenResponse is the subset of Emma's token response that is used.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	AccountIDs  []accountID `json:"account_ids"`
}

// accountID accepts both JSON strings and JSON numbers.
type accountID string

func (a *accountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = accountID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("account id must be a string or number: %w", err)
	}
	*a = accountID(n.String())
	return nil
}

var (
	errMissingAccessToken = errors.New("missing access_token")
	errMissingAccountIDs  = errors.New("missing account_ids")
)

func decodeTokenResponse(status int, raw []byte) (*TokenExchangeResult, error) {
	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, newParseError(status, raw, err)
	}
	if tr.AccessToken == "" {
		return nil, newParseError(status, raw, errMissingAccessToken)
	}
	if len(tr.AccountIDs) == 0 || tr.AccountIDs[0] == "" {
		return nil, newParseError(status, raw, errMissingAccountIDs)
	}

	return &TokenExchangeResult{
		AccessToken: tr.AccessToken,
		AccountID:   string(tr.AccountIDs[0]),
	}, nil
}
