package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/metric"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, auth *authenticating.Service, role int, companies ...string) string {
	t.Helper()

	token, err := auth.IssueToken(domain.Claims{UserEmail: "user@example.com", UserRoleID: role, UserCompanies: companies})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(config.Auth{Secret: "test-secret", TokenTTL: time.Hour})

	var seen *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		wantStatus int
	}{
		{"rota pública sem token", http.MethodGet, "/healthcheck", "", http.StatusOK},
		{"métricas prometheus sem token", http.MethodGet, "/metrics", "", http.StatusOK},
		{"preflight sem token", http.MethodOptions, "/v1/metrics/daily", "", http.StatusOK},
		{"sem header", http.MethodGet, "/v1/metrics/daily", "", http.StatusUnauthorized},
		{"sem prefixo Bearer", http.MethodGet, "/v1/metrics/daily", issueToken(t, auth, domain.RoleAdmin), http.StatusUnauthorized},
		{"token inválido", http.MethodGet, "/v1/metrics/daily", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"token válido", http.MethodGet, "/v1/metrics/daily", "Bearer " + issueToken(t, auth, domain.RoleClient, "Acme"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	require.NotNil(t, seen)
	assert.Equal(t, []string{"Acme"}, seen.UserCompanies)
}

func TestRoleMiddleware(t *testing.T) {
	withClaims := func(claims *domain.Claims) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if claims == nil {
			return req
		}
		return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserRoleID: domain.RoleAdmin}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserRoleID: domain.RoleClient}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	AllRoles()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserRoleID: domain.RoleClient}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	AllRoles()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserRoleID: 99}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	AllRoles()(okHandler()).ServeHTTP(rec, withClaims(nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/companies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/companies", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/companies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestLoggingMiddleware(t *testing.T) {
	m := metric.NewMetrics()

	var correlationID string
	handler := LoggingMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsProcessed.WithLabelValues(http.MethodGet, "418")))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
