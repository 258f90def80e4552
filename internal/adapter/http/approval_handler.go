package http

import (
	"encoding/json"
	"net/http"

	domainApproval "rentdesk-backend/internal/domain/approval"
	approvaluc "rentdesk-backend/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *approvaluc.Usecase }

func NewApprovalHandler(uc *approvaluc.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

func (h *ApprovalHandler) ListRequests(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domainApproval.ListFilter{
		Status:      domainApproval.Status(c.QueryParam("status")),
		RequestedBy: c.QueryParam("requested_by"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateRequestData lets a reviewing admin edit the snapshot of a pending
// request before approving it. Only admins: the edited snapshot is what the
// replay later runs with elevated rights.
func (h *ApprovalHandler) UpdateRequestData(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	if !actor.IsAdmin() {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only admins may edit request data"})
	}
	var partial json.RawMessage
	if err := c.Bind(&partial); err != nil || len(partial) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.UpdateRequestData(c.Request().Context(), c.Param("request_id"), partial)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApprovalHandler) ApproveRequest(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	if !actor.IsAdmin() {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only admins may approve requests"})
	}
	out, err := h.uc.Approve(c.Request().Context(), c.Param("request_id"), actor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ApprovalHandler) RejectRequest(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	if !actor.IsAdmin() {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only admins may reject requests"})
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.Reject(c.Request().Context(), c.Param("request_id"), actor.ID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
