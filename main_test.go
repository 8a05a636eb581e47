package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/config"
	"github.com/blogem/emma-oauth/controllers"
	"github.com/blogem/emma-oauth/database"
	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/models"
	"github.com/blogem/emma-oauth/repositories"
)

const testAdminToken = "operator-token"

// newTestServer starts the full router against a fake Emma token endpoint
func newTestServer(t *testing.T, tokenHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	emma := httptest.NewServer(tokenHandler)
	t.Cleanup(emma.Close)

	cfg, err := config.LoadFrom(map[string]string{
		"EMMA_API_KEY":      "key",
		"EMMA_SECRET":       "secret",
		"EMMA_REDIRECT_URI": "http://localhost:8080/callback",
		"EMMA_TIMEOUT":      "2s",
		"ADMIN_TOKEN":       testAdminToken,
		"RATE_LIMIT_RPS":    "100",
		"RATE_LIMIT_BURST":  "100",
	})
	require.NoError(t, err)

	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	authCfg := cfg.Authenticator()
	authCfg.Endpoint = oauth2.Endpoint{
		AuthURL:   authenticator.AuthURL,
		TokenURL:  emma.URL + "/oauth/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	provider, err := authenticator.NewEmmaProvider(authCfg)
	require.NoError(t, err)

	inst, err := instrumentation.New(instrumentation.Config{Enabled: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = inst.Shutdown(context.Background()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := newApp(cfg, provider, repositories.NewRepositories(db), inst, logger)
	t.Cleanup(a.rateLimiter.Stop)

	srv := httptest.NewServer(setupRouter(a))
	t.Cleanup(srv.Close)
	return srv
}

func noRedirectClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// startLogin follows GET / and returns the state and its cookie
func startLogin(t *testing.T, client *http.Client, base string) (string, *http.Cookie) {
	t.Helper()
	resp, err := client.Get(base + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "login.e2ma.net", location.Host)
	assert.Equal(t, "/oauth/authorize", location.Path)
	assert.Equal(t, "code", location.Query().Get("response_type"))

	var stateCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == controllers.StateCookieName {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie)
	require.Equal(t, location.Query().Get("state"), stateCookie.Value)
	return stateCookie.Value, stateCookie
}

func callback(t *testing.T, client *http.Client, base, query string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, base+"/callback?"+query, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestLoginFlow_EndToEnd(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "code-1", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok123","account_ids":["acct1","acct2"]}`)
	})
	client := noRedirectClient()

	state, cookie := startLogin(t, client, srv.URL)

	resp := callback(t, client, srv.URL, url.Values{"code": {"code-1"}, "state": {state}}.Encode(), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var result authenticator.TokenExchangeResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "tok123", result.AccessToken)
	assert.Equal(t, "acct1", result.AccountID)

	// The state is single use
	replay := callback(t, client, srv.URL, url.Values{"code": {"code-1"}, "state": {state}}.Encode(), cookie)
	assert.Equal(t, http.StatusBadRequest, replay.StatusCode)

	// The operator endpoint reports both attempts without the token
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/exchanges", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	listResp, err := client.Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok123")

	var summary models.ExchangeSummary
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, int64(1), summary.Totals[models.OutcomeSucceeded])
	assert.Equal(t, int64(1), summary.Totals[models.OutcomeStateMismatch])

	// Each attempt can be fetched by id
	require.NotEmpty(t, summary.Recent)
	for _, rec := range summary.Recent {
		got := getExchange(t, client, srv.URL, rec.ID)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, rec.Outcome, got.Outcome)
	}

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/exchanges/does-not-exist", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	missing, err := client.Do(req)
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func getExchange(t *testing.T, client *http.Client, base, id string) models.ExchangeRecord {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, base+"/exchanges/"+url.PathEscape(id), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var record models.ExchangeRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	return record
}

func TestLoginFlow_ProviderErrorIsSanitized(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
	})
	client := noRedirectClient()

	state, cookie := startLogin(t, client, srv.URL)
	resp := callback(t, client, srv.URL, url.Values{"code": {"bad"}, "state": {state}}.Encode(), cookie)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"error":"exchange_failed"`)
	assert.NotContains(t, string(raw), "invalid_grant")
}

func TestLoginFlow_StateMismatch(t *testing.T) {
	var called atomic.Bool
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})
	client := noRedirectClient()

	_, cookie := startLogin(t, client, srv.URL)
	resp := callback(t, client, srv.URL, "code=code-1&state=forged", cookie)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called.Load(), "provider must not be called on a state mismatch")
}

func TestOperatorRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/exchanges", "/exchanges/some-id", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"healthy","service":"emma-oauth"}`, string(raw))
}
