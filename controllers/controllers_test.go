package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/instrumentation"
	"github.com/blogem/emma-oauth/models"
	"github.com/blogem/emma-oauth/services"
	"github.com/blogem/emma-oauth/services/mocks"
)

func newAuthController(t *testing.T) (*AuthController, *mocks.MockLoginService) {
	t.Helper()
	svc := mocks.NewMockLoginService(t)
	return NewAuthController(svc, Options{StateTTL: 10 * time.Minute, SecureCookies: true}), svc
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_RedirectsWithStateCookie(t *testing.T) {
	ac, svc := newAuthController(t)
	svc.EXPECT().BeginLogin(mock.Anything, mock.Anything).Return(&services.LoginStart{
		URL:   "https://login.e2ma.net/oauth/authorize?state=abc",
		State: "abc",
	}, nil)

	rec := httptest.NewRecorder()
	ac.Login(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://login.e2ma.net/oauth/authorize?state=abc", rec.Header().Get("Location"))

	cookie := findCookie(rec, StateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "abc", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, 600, cookie.MaxAge)
}

func TestLogin_ServiceError(t *testing.T) {
	ac, svc := newAuthController(t)
	svc.EXPECT().BeginLogin(mock.Anything, mock.Anything).Return(nil, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	ac.Login(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error)
	assert.NotContains(t, rec.Body.String(), "database is locked")
}

func TestCallback_Success(t *testing.T) {
	ac, svc := newAuthController(t)
	svc.EXPECT().
		CompleteLogin(mock.Anything, mock.MatchedBy(func(cb services.LoginCallback) bool {
			return cb.Code == "code-1" && cb.State == "abc" && cb.ExpectedState == "abc"
		})).
		Return(&authenticator.TokenExchangeResult{AccessToken: "tok123", AccountID: "acct1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/callback?code=code-1&state=abc", nil)
	req.AddCookie(&http.Cookie{Name: StateCookieName, Value: "abc"})
	rec := httptest.NewRecorder()
	ac.Callback(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"access_token":"tok123","account_id":"acct1"}`, rec.Body.String())

	cookie := findCookie(rec, StateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestCallback_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing code",
			err:        services.ErrMissingCode,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
		{
			name:       "state mismatch",
			err:        fmt.Errorf("%w: mismatch", services.ErrStateMismatch),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_state",
		},
		{
			name:       "state store failure",
			err:        fmt.Errorf("%w: %w", services.ErrStateStore, errors.New("database is locked")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
		{
			name: "timeout",
			err: fmt.Errorf("exchange code: %w", &authenticator.TokenExchangeError{
				Kind:    authenticator.KindTimeout,
				Message: "token exchange timed out after 60s",
			}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "timeout",
		},
		{
			name: "provider status",
			err: fmt.Errorf("exchange code: %w", &authenticator.TokenExchangeError{
				Kind:       authenticator.KindHTTPStatus,
				Message:    "token request failed",
				StatusCode: 401,
				Body:       `{"error":"invalid_grant"}`,
			}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "exchange_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, svc := newAuthController(t)
			svc.EXPECT().CompleteLogin(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			ac.Callback(rec, httptest.NewRequest(http.MethodGet, "/callback?code=c&state=s", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error)
			assert.NotEmpty(t, body.Message)
			assert.NotContains(t, rec.Body.String(), "invalid_grant")
			assert.NotContains(t, rec.Body.String(), "status 401")
			assert.NotContains(t, rec.Body.String(), "database is locked")
		})
	}
}

func TestCallback_ProviderDenied(t *testing.T) {
	ac, svc := newAuthController(t)

	rec := httptest.NewRecorder()
	ac.Callback(rec, httptest.NewRequest(http.MethodGet, "/callback?error=access_denied&error_description=nope", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "access_denied", decodeError(t, rec).Error)
	svc.AssertNotCalled(t, "CompleteLogin", mock.Anything, mock.Anything)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthController().Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"emma-oauth"}`, rec.Body.String())
}

func TestExchangeList(t *testing.T) {
	svc := mocks.NewMockLoginService(t)
	ec := NewExchangeController(svc)
	svc.EXPECT().RecentExchanges(mock.Anything, 5).Return(&models.ExchangeSummary{
		Recent: []models.ExchangeRecord{{ID: "a", Outcome: models.OutcomeSucceeded}},
		Totals: map[models.ExchangeOutcome]int64{models.OutcomeSucceeded: 1},
	}, nil)

	rec := httptest.NewRecorder()
	ec.List(rec, httptest.NewRequest(http.MethodGet, "/exchanges?limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary models.ExchangeSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary.Recent, 1)
	assert.Equal(t, int64(1), summary.Totals[models.OutcomeSucceeded])
}

func TestExchangeList_InvalidLimit(t *testing.T) {
	ec := NewExchangeController(mocks.NewMockLoginService(t))

	rec := httptest.NewRecorder()
	ec.List(rec, httptest.NewRequest(http.MethodGet, "/exchanges?limit=ten", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Error)
}

func TestExchangeList_ServiceError(t *testing.T) {
	svc := mocks.NewMockLoginService(t)
	ec := NewExchangeController(svc)
	svc.EXPECT().RecentExchanges(mock.Anything, 0).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	ec.List(rec, httptest.NewRequest(http.MethodGet, "/exchanges", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func getExchange(ec *ExchangeController, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/exchanges/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	ec.Get(rec, req)
	return rec
}

func TestExchangeGet(t *testing.T) {
	tests := []struct {
		name       string
		record     *models.ExchangeRecord
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			record:     &models.ExchangeRecord{ID: "ex-1", Outcome: models.OutcomeHTTPError, StatusCode: 401},
			wantStatus: http.StatusOK,
			wantBody:   `"outcome":"http_error"`,
		},
		{
			name:       "not found",
			err:        services.ErrExchangeNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"not_found"`,
		},
		{
			name:       "repository failure",
			err:        errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal_error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLoginService(t)
			svc.EXPECT().GetExchange(mock.Anything, "ex-1").Return(tt.record, tt.err)

			rec := getExchange(NewExchangeController(svc), "ex-1")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "database is locked")
		})
	}
}

type stubMetrics struct {
	points []instrumentation.MetricPoint
	err    error
}

func (s stubMetrics) Snapshot(context.Context) ([]instrumentation.MetricPoint, error) {
	return s.points, s.err
}

func TestMetricsShow(t *testing.T) {
	tests := []struct {
		name       string
		source     stubMetrics
		wantStatus int
		wantBody   string
	}{
		{
			name: "points",
			source: stubMetrics{points: []instrumentation.MetricPoint{
				{Name: instrumentation.MetricAuthorizationStarted, Value: 3},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"emma.authorization.started"`,
		},
		{
			name:       "disabled",
			source:     stubMetrics{err: instrumentation.ErrDisabled},
			wantStatus: http.StatusNotFound,
			wantBody:   "metrics_disabled",
		},
		{
			name:       "collect failure",
			source:     stubMetrics{err: errors.New("reader is shutdown")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewMetricsController(tt.source).Show(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
