package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainBilling "rentdesk-backend/internal/domain/billing"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/pkg/valerr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithHeaders(headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestActorFrom(t *testing.T) {
	adminID := strings.Repeat("a", 32)

	c, _ := ctxWithHeaders(map[string]string{"X-Actor-Id": adminID, "X-Actor-Role": "admin"})
	actor, ok := actorFrom(c)
	require.True(t, ok)
	assert.Equal(t, auth.Actor{ID: adminID, Role: auth.RoleAdmin}, actor)

	// any non-admin role collapses to staff
	c, _ = ctxWithHeaders(map[string]string{"X-Actor-Id": adminID, "X-Actor-Role": "superuser"})
	actor, ok = actorFrom(c)
	require.True(t, ok)
	assert.Equal(t, auth.RoleStaff, actor.Role)

	c, _ = ctxWithHeaders(map[string]string{"X-Actor-Id": adminID})
	actor, ok = actorFrom(c)
	require.True(t, ok)
	assert.Equal(t, auth.RoleStaff, actor.Role)

	c, _ = ctxWithHeaders(map[string]string{"X-Actor-Id": "short"})
	_, ok = actorFrom(c)
	assert.False(t, ok)

	c, _ = ctxWithHeaders(nil)
	_, ok = actorFrom(c)
	assert.False(t, ok)
}

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"tenant not found", domainTenant.ErrNotFound, http.StatusNotFound},
		{"invoice not found", domainBilling.ErrInvoiceNotFound, http.StatusNotFound},
		{"active immutable", domainContract.ErrActiveImmutable, http.StatusConflict},
		{"not pending", domainApproval.ErrNotPending, http.StatusConflict},
		{"tenant in use", domainTenant.ErrInUse, http.StatusConflict},
		{"unit overlap", domainContract.ErrUnitOverlap, http.StatusBadRequest},
		{"sequential rule", &domainBilling.ErrEarlierInstallmentUnpaid{InstallmentNumber: 1}, http.StatusBadRequest},
		{"prose validation", valerr.New("monthly_rent must be positive"), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create contract: %w", valerr.New("invalid payment_frequency")), http.StatusBadRequest},
		{"infrastructure fault", assert.AnError, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := ctxWithHeaders(nil)
			require.NoError(t, respondError(c, tc.err))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestRespondError_FailureShapeForFormErrors(t *testing.T) {
	c, rec := ctxWithHeaders(nil)
	require.NoError(t, respondError(c, domainTenant.ErrInUse))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRespondError_InfraErrorIsNotAFormFailure(t *testing.T) {
	c, rec := ctxWithHeaders(nil)
	require.NoError(t, respondError(c, fmt.Errorf("dial tcp: connection refused")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend unavailable")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
