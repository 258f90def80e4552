package http

import (
	"net/http"

	tenantuc "rentdesk-backend/internal/usecase/tenant"

	"github.com/labstack/echo/v4"
)

type TenantHandler struct{ uc *tenantuc.Usecase }

func NewTenantHandler(uc *tenantuc.Usecase) *TenantHandler { return &TenantHandler{uc: uc} }

type createTenantReq struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	IDType         string `json:"id_type"`
	IDNumber       string `json:"id_number"`
	Nationality    string `json:"nationality"`
	PreferredLang  string `json:"preferred_lang"`
	ContactByEmail bool   `json:"contact_by_email"`
	Notes          string `json:"notes"`
}

// CreateTenant is gated: non-admin actors get 202 with a pending request id.
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	var req createTenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Create(c.Request().Context(), tenantuc.CreateTenantInput(req), actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *TenantHandler) ListTenants(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenantHandler) GetTenant(c echo.Context) error {
	t, err := h.uc.Get(c.Request().Context(), c.Param("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TenantHandler) UpdateTenant(c echo.Context) error {
	var req tenantuc.UpdateTenantInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	t, err := h.uc.Update(c.Request().Context(), c.Param("tenant_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TenantHandler) DeleteTenant(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("tenant_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
