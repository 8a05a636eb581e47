// Package authenticator implements the client side of Emma's OAuth2
// authorization code flow: building the authorize redirect and exchanging
// the returned code for an access token.
package authenticator

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTimeout bounds a single token exchange when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Emma login endpoints
const (
	AuthURL  = "https://login.e2ma.net/oauth/authorize"
	TokenURL = "https://login.e2ma.net/oauth/token"
)

// Endpoint is Emma's OAuth2 endpoint. Client credentials travel in the form body.
var Endpoint = oauth2.Endpoint{
	AuthURL:   AuthURL,
	TokenURL:  TokenURL,
	AuthStyle: oauth2.AuthStyleInParams,
}

// Config holds the client registration for Emma. It is a value type and is
// copied into every component that needs it.
type Config struct {
	// APIKey is the client identifier issued by Emma.
	APIKey string

	// SharedSecret is the client secret issued by Emma.
	SharedSecret string

	// RedirectURI is the callback URL registered with Emma.
	RedirectURI string

	// Timeout bounds a token exchange (default: 60s).
	Timeout time.Duration

	// Endpoint overrides Emma's endpoints. Zero value means Endpoint.
	Endpoint oauth2.Endpoint

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// NewConfig builds a validated Config with default timeout and endpoint.
func NewConfig(apiKey, sharedSecret, redirectURI string) (Config, error) {
	cfg := Config{
		APIKey:       apiKey,
		SharedSecret: sharedSecret,
		RedirectURI:  redirectURI,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// Validate reports a *ConfigurationError for the first missing credential.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &ConfigurationError{Field: "api key"}
	}
	if strings.TrimSpace(c.SharedSecret) == "" {
		return &ConfigurationError{Field: "shared secret"}
	}
	if strings.TrimSpace(c.RedirectURI) == "" {
		return &ConfigurationError{Field: "redirect URI"}
	}
	if c.Timeout < 0 {
		return &ConfigurationError{Field: "timeout", Reason: "must not be negative"}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Endpoint.AuthURL == "" {
		c.Endpoint.AuthURL = Endpoint.AuthURL
	}
	if c.Endpoint.TokenURL == "" {
		c.Endpoint.TokenURL = Endpoint.TokenURL
	}
	c.Endpoint.AuthStyle = oauth2.AuthStyleInParams
	return c
}

func (c Config) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.APIKey,
		ClientSecret: c.SharedSecret,
		RedirectURL:  c.RedirectURI,
		Endpoint:     c.Endpoint,
	}
}

// TokenExchangeResult is the normalized outcome of a successful exchange.
type TokenExchangeResult struct {
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
}

// Provider abstracts the identity provider so HTTP handlers and services
// can be exercised without network access.
type Provider interface {
	// Name returns the provider name
	Name() string

	// AuthorizationURL returns the URL the browser is redirected to
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for an access token
	ExchangeCode(ctx context.Context, code string) (*TokenExchangeResult, error)
}
