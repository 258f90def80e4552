package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainBilling "rentdesk-backend/internal/domain/billing"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainProperty "rentdesk-backend/internal/domain/property"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/pkg/valerr"

	"github.com/labstack/echo/v4"
)

// actorFrom reads the acting user from trusted headers; auth/session
// handling is external and the core takes the role as given.
func actorFrom(c echo.Context) (auth.Actor, bool) {
	id := strings.TrimSpace(c.Request().Header.Get("X-Actor-Id"))
	if !reHex32.MatchString(id) {
		return auth.Actor{}, false
	}
	role := auth.Role(strings.TrimSpace(c.Request().Header.Get("X-Actor-Role")))
	if role != auth.RoleAdmin {
		role = auth.RoleStaff
	}
	return auth.Actor{ID: id, Role: role}, true
}

func missingActor(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// respondError maps domain errors onto the error taxonomy: not-found → 404,
// invariant violations → 409, validation failures → 400 with the
// {success:false} form shape, anything else (infrastructure) → 503.
func respondError(c echo.Context, err error) error {
	var seq *domainBilling.ErrEarlierInstallmentUnpaid

	switch {
	case errors.Is(err, domainProperty.ErrNotFound),
		errors.Is(err, domainProperty.ErrUnitNotFound),
		errors.Is(err, domainTenant.ErrNotFound),
		errors.Is(err, domainContract.ErrNotFound),
		errors.Is(err, domainBilling.ErrInvoiceNotFound),
		errors.Is(err, domainBilling.ErrPaymentNotFound),
		errors.Is(err, domainApproval.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainContract.ErrActiveImmutable),
		errors.Is(err, domainContract.ErrForbiddenTransition),
		errors.Is(err, domainContract.ErrInvalidTransition),
		errors.Is(err, domainApproval.ErrNotPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainProperty.ErrHasUnits),
		errors.Is(err, domainProperty.ErrUnitInUse),
		errors.Is(err, domainTenant.ErrInUse):
		return c.JSON(http.StatusConflict, FailureResponse{Message: err.Error()})

	case errors.As(err, &seq),
		errors.Is(err, domainContract.ErrUnitOverlap),
		errors.Is(err, domainContract.ErrTenantActiveExists),
		errors.Is(err, domainBilling.ErrInvoiceClosed),
		errors.Is(err, domainBilling.ErrBadSchedule),
		errors.Is(err, domainBilling.ErrInvoiceEditRestricted),
		errors.Is(err, domainTenant.ErrIDNumberRequired),
		errors.Is(err, domainApproval.ErrReasonRequired),
		errors.Is(err, domainApproval.ErrUnknownType):
		return c.JSON(http.StatusBadRequest, FailureResponse{Message: err.Error()})

	case valerr.Is(err):
		return c.JSON(http.StatusBadRequest, FailureResponse{Message: err.Error()})
	}

	// Anything unmatched is an infrastructure fault (backend unreachable,
	// driver failure), not user input.
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "backend unavailable"})
}
