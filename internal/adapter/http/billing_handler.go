package http

import (
	"net/http"
	"time"

	domainBilling "rentdesk-backend/internal/domain/billing"
	billinguc "rentdesk-backend/internal/usecase/billing"
	"rentdesk-backend/pkg/dateonly"

	"github.com/labstack/echo/v4"
)

type BillingHandler struct{ uc *billinguc.Usecase }

func NewBillingHandler(uc *billinguc.Usecase) *BillingHandler { return &BillingHandler{uc: uc} }

type createPaymentReq struct {
	InvoiceID       string  `json:"invoice_id" validate:"required,hex32"`
	Amount          float64 `json:"amount" validate:"required,gt=0,dec2"`
	PaymentDate     string  `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Method          string  `json:"method" validate:"required,oneof=cash cheque bank_transfer card"`
	ReferenceNumber string  `json:"reference_number"`
	Notes           string  `json:"notes"`
}

func (h *BillingHandler) CreatePayment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	var date time.Time
	if req.PaymentDate != "" {
		d, err := parseDate(req.PaymentDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_date"})
		}
		date = d
	}

	res, err := h.uc.CreatePayment(c.Request().Context(), billinguc.CreatePaymentInput{
		InvoiceID:       req.InvoiceID,
		Amount:          req.Amount,
		PaymentDate:     dateonly.Of(date),
		Method:          domainBilling.PaymentMethod(req.Method),
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}, actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *BillingHandler) DeletePayment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	res, err := h.uc.DeletePayment(c.Request().Context(), c.Param("payment_id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BillingHandler) ListContractInvoices(c echo.Context) error {
	out, err := h.uc.ListInvoices(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillingHandler) GetInvoice(c echo.Context) error {
	out, err := h.uc.GetInvoice(c.Request().Context(), c.Param("invoice_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillingHandler) ListInvoicePayments(c echo.Context) error {
	out, err := h.uc.ListPayments(c.Request().Context(), c.Param("invoice_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateInvoiceReq struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending partial paid overdue cancelled"`
	Notes  *string `json:"notes"`
}

func (h *BillingHandler) UpdateInvoice(c echo.Context) error {
	var req updateInvoiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	in := billinguc.UpdateInvoiceInput{Notes: req.Notes}
	if req.Status != nil {
		s := domainBilling.InvoiceStatus(*req.Status)
		in.Status = &s
	}
	out, err := h.uc.UpdateInvoice(c.Request().Context(), c.Param("invoice_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// OverdueSweep is triggered by the UI's polling timer; there is no
// server-side scheduler.
func (h *BillingHandler) OverdueSweep(c echo.Context) error {
	asOf := time.Now().UTC()
	if raw := c.QueryParam("as_of"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid as_of"})
		}
		asOf = d
	}
	n, err := h.uc.MarkOverdue(c.Request().Context(), asOf)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"marked_overdue": n})
}

func (h *BillingHandler) ReminderLinks(c echo.Context) error {
	out, err := h.uc.ReminderLinks(c.Request().Context(), c.Param("invoice_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
