package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
)

func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserEmail: "admin@example.com", UserRoleID: domain.RoleAdmin}
}

func clientClaims(companies ...string) *domain.Claims {
	return &domain.Claims{UserID: 2, UserEmail: "client@example.com", UserRoleID: domain.RoleClient, UserCompanies: companies}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}
