package http

import (
	"net/http"

	domainContract "rentdesk-backend/internal/domain/contract"
	contractuc "rentdesk-backend/internal/usecase/contract"
	"rentdesk-backend/pkg/dateonly"

	"github.com/labstack/echo/v4"
)

type ContractHandler struct{ uc *contractuc.Usecase }

func NewContractHandler(uc *contractuc.Usecase) *ContractHandler { return &ContractHandler{uc: uc} }

type createContractReq struct {
	TenantID             string   `json:"tenant_id" validate:"required,hex32"`
	UnitID               string   `json:"unit_id" validate:"required,hex32"`
	StartDate            string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	MonthlyRent          float64  `json:"monthly_rent" validate:"required,gt=0,dec2"`
	SecurityDeposit      float64  `json:"security_deposit" validate:"gte=0,dec2"`
	PaymentFrequency     string   `json:"payment_frequency" validate:"required,oneof=monthly 1_payment 2_payment 3_payment 4_payment"`
	NumberOfInstallments int      `json:"number_of_installments" validate:"gte=0"`
	Status               string   `json:"status" validate:"omitempty,oneof=draft active"`
	DueDateDay           *int     `json:"due_date_day" validate:"omitempty,gte=1,lte=31"`
	Attachments          []string `json:"attachments"`
}

func (h *ContractHandler) CreateContract(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	var req createContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_date"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end_date"})
	}

	res, err := h.uc.Create(c.Request().Context(), contractuc.CreateContractInput{
		TenantID:             req.TenantID,
		UnitID:               req.UnitID,
		StartDate:            dateonly.Of(start),
		EndDate:              dateonly.Of(end),
		MonthlyRent:          req.MonthlyRent,
		SecurityDeposit:      req.SecurityDeposit,
		PaymentFrequency:     domainContract.PaymentFrequency(req.PaymentFrequency),
		NumberOfInstallments: req.NumberOfInstallments,
		Status:               domainContract.Status(req.Status),
		DueDateDay:           req.DueDateDay,
		Attachments:          req.Attachments,
	}, actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ContractHandler) ListContracts(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domainContract.ListFilter{
		TenantID: c.QueryParam("tenant_id"),
		UnitID:   c.QueryParam("unit_id"),
		Status:   domainContract.Status(c.QueryParam("status")),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateContractReq struct {
	StartDate            *string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate              *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent          *float64  `json:"monthly_rent" validate:"omitempty,gt=0,dec2"`
	SecurityDeposit      *float64  `json:"security_deposit" validate:"omitempty,gte=0,dec2"`
	PaymentFrequency     *string   `json:"payment_frequency" validate:"omitempty,oneof=monthly 1_payment 2_payment 3_payment 4_payment"`
	NumberOfInstallments *int      `json:"number_of_installments" validate:"omitempty,gte=0"`
	DueDateDay           *int      `json:"due_date_day" validate:"omitempty,gte=1,lte=31"`
	Attachments          *[]string `json:"attachments"`
	Status               *string   `json:"status" validate:"omitempty,oneof=draft active expired terminated"`
}

func (h *ContractHandler) UpdateContract(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	var req updateContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	in := contractuc.UpdateContractInput{
		MonthlyRent:          req.MonthlyRent,
		SecurityDeposit:      req.SecurityDeposit,
		NumberOfInstallments: req.NumberOfInstallments,
		DueDateDay:           req.DueDateDay,
		Attachments:          req.Attachments,
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_date"})
		}
		in.StartDate = &d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end_date"})
		}
		in.EndDate = &d
	}
	if req.PaymentFrequency != nil {
		f := domainContract.PaymentFrequency(*req.PaymentFrequency)
		in.PaymentFrequency = &f
	}
	if req.Status != nil {
		s := domainContract.Status(*req.Status)
		in.Status = &s
	}

	res, err := h.uc.Update(c.Request().Context(), c.Param("contract_id"), in, actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusOK, res)
}

// TerminateContract is gated: non-admins get a pending approval request.
func (h *ContractHandler) TerminateContract(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return missingActor(c)
	}
	res, err := h.uc.Terminate(c.Request().Context(), c.Param("contract_id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusAccepted, res)
	}
	return c.JSON(http.StatusOK, res)
}
