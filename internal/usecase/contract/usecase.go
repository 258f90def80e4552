package contract

import (
	"context"
	"errors"
	"time"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainBilling "rentdesk-backend/internal/domain/billing"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainProperty "rentdesk-backend/internal/domain/property"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/internal/domain/uow"
	"rentdesk-backend/pkg/dateonly"
	"rentdesk-backend/pkg/id"
	"rentdesk-backend/pkg/valerr"
)

type Usecase struct {
	contracts domainContract.Repository
	units     domainProperty.UnitRepository
	tenants   domainTenant.Repository
	invoices  domainBilling.InvoiceRepository
	approvals domainApproval.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(
	contracts domainContract.Repository,
	units domainProperty.UnitRepository,
	tenants domainTenant.Repository,
	invoices domainBilling.InvoiceRepository,
	approvals domainApproval.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{contracts: contracts, units: units, tenants: tenants, invoices: invoices, approvals: approvals, uow: tx}
}

// CreateContractInput doubles as the approval snapshot payload. Dates ride
// as dateonly so a pending-request edit in API format replays cleanly.
type CreateContractInput struct {
	TenantID             string                          `json:"tenant_id"`
	UnitID               string                          `json:"unit_id"`
	StartDate            dateonly.Date                   `json:"start_date"`
	EndDate              dateonly.Date                   `json:"end_date"`
	MonthlyRent          float64                         `json:"monthly_rent"`
	SecurityDeposit      float64                         `json:"security_deposit"`
	PaymentFrequency     domainContract.PaymentFrequency `json:"payment_frequency"`
	NumberOfInstallments int                             `json:"number_of_installments"`
	Status               domainContract.Status           `json:"status"`
	DueDateDay           *int                            `json:"due_date_day,omitempty"`
	Attachments          []string                        `json:"attachments,omitempty"`
}

type CreateResult struct {
	RequiresApproval bool                     `json:"requires_approval"`
	RequestID        string                   `json:"request_id,omitempty"`
	Contract         *domainContract.Contract `json:"contract,omitempty"`
}

func (in *CreateContractInput) validate() error {
	if in.TenantID == "" || in.UnitID == "" {
		return valerr.New("tenant_id and unit_id are required")
	}
	if in.MonthlyRent <= 0 {
		return valerr.New("monthly_rent must be positive")
	}
	if in.EndDate.Before(in.StartDate.Time) {
		return valerr.New("end_date must not precede start_date")
	}
	if !domainContract.ValidFrequency(in.PaymentFrequency) {
		return valerr.New("invalid payment_frequency")
	}
	if in.DueDateDay != nil && (*in.DueDateDay < 1 || *in.DueDateDay > 31) {
		return valerr.New("due_date_day must be between 1 and 31")
	}
	switch in.Status {
	case "", domainContract.StatusDraft, domainContract.StatusActive:
		return nil
	}
	return valerr.New("new contracts must be draft or active")
}

// Create routes through the approval gate first; a direct (admin) create of
// an active contract validates unit/tenant exclusivity and generates the
// invoice schedule in the same transaction.
func (u *Usecase) Create(ctx context.Context, in CreateContractInput, actor auth.Actor) (*CreateResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := u.tenants.GetByTenantID(ctx, in.TenantID); err != nil {
		return nil, err
	}
	if _, err := u.units.GetByUnitID(ctx, in.UnitID); err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		req, err := domainApproval.NewPending(domainApproval.TypeContractCreate, "contract", actor, in)
		if err != nil {
			return nil, err
		}
		if err := u.approvals.Create(ctx, req); err != nil {
			return nil, err
		}
		return &CreateResult{RequiresApproval: true, RequestID: req.RequestID}, nil
	}

	status := in.Status
	if status == "" {
		status = domainContract.StatusDraft
	}
	c := &domainContract.Contract{
		ContractID:           id.NewID32(),
		TenantID:             in.TenantID,
		UnitID:               in.UnitID,
		StartDate:            in.StartDate.Time,
		EndDate:              in.EndDate.Time,
		MonthlyRent:          in.MonthlyRent,
		SecurityDeposit:      in.SecurityDeposit,
		PaymentFrequency:     in.PaymentFrequency,
		NumberOfInstallments: in.NumberOfInstallments,
		Status:               status,
		DueDateDay:           in.DueDateDay,
		Attachments:          in.Attachments,
		StatusUpdatedAt:      time.Now().UTC(),
	}
	schedule, err := domainBilling.BuildSchedule(c)
	if err != nil {
		return nil, err
	}
	c.NumberOfInstallments = len(schedule)

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if c.Status == domainContract.StatusActive {
			if err := checkExclusivity(ctx, r, c); err != nil {
				return err
			}
		}
		if err := r.Contracts.Create(ctx, c); err != nil {
			return err
		}
		if c.Status == domainContract.StatusActive {
			return activate(ctx, r, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateResult{Contract: c}, nil
}

// checkExclusivity enforces at most one active contract per unit for
// overlapping dates and one active contract per tenant overall.
func checkExclusivity(ctx context.Context, r uow.Repos, c *domainContract.Contract) error {
	active, err := r.Contracts.ListActiveByUnit(ctx, c.UnitID)
	if err != nil {
		return err
	}
	for i := range active {
		if active[i].ContractID == c.ContractID {
			continue
		}
		if active[i].Overlaps(c.StartDate, c.EndDate) {
			return domainContract.ErrUnitOverlap
		}
	}
	existing, err := r.Contracts.GetActiveByTenant(ctx, c.TenantID)
	switch {
	case err == nil && existing.ContractID != c.ContractID:
		return domainContract.ErrTenantActiveExists
	case err != nil && !errors.Is(err, domainContract.ErrNotFound):
		return err
	}
	return nil
}

// activate occupies the unit and generates the invoice schedule. Generation
// is idempotent: a contract that already has invoices is left untouched.
func activate(ctx context.Context, r uow.Repos, c *domainContract.Contract) error {
	unit, err := r.Units.GetByUnitID(ctx, c.UnitID)
	if err != nil {
		return err
	}
	if !unit.IsOccupied {
		unit.IsOccupied = true
		if err := r.Units.Save(ctx, unit); err != nil {
			return err
		}
	}
	n, err := r.Invoices.CountByContract(ctx, c.ContractID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	schedule, err := domainBilling.BuildSchedule(c)
	if err != nil {
		return err
	}
	return r.Invoices.CreateBatch(ctx, schedule)
}

type UpdateContractInput struct {
	StartDate            *time.Time                       `json:"start_date,omitempty"`
	EndDate              *time.Time                       `json:"end_date,omitempty"`
	MonthlyRent          *float64                         `json:"monthly_rent,omitempty"`
	SecurityDeposit      *float64                         `json:"security_deposit,omitempty"`
	PaymentFrequency     *domainContract.PaymentFrequency `json:"payment_frequency,omitempty"`
	NumberOfInstallments *int                             `json:"number_of_installments,omitempty"`
	DueDateDay           *int                             `json:"due_date_day,omitempty"`
	Attachments          *[]string                        `json:"attachments,omitempty"`
	Status               *domainContract.Status           `json:"status,omitempty"`
}

func (in *UpdateContractInput) touchesFieldsOtherThanStatus() bool {
	return in.StartDate != nil || in.EndDate != nil || in.MonthlyRent != nil ||
		in.SecurityDeposit != nil || in.PaymentFrequency != nil ||
		in.NumberOfInstallments != nil || in.DueDateDay != nil || in.Attachments != nil
}

// Update enforces active-contract immutability: once active, the only legal
// change is the status transition to terminated (delegated to Terminate).
// A draft-to-active transition by a non-admin raises an error; the UI is
// expected to route activation through the approval gate instead.
func (u *Usecase) Update(ctx context.Context, contractID string, in UpdateContractInput, actor auth.Actor) (*CreateResult, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	switch c.Status {
	case domainContract.StatusActive:
		if in.touchesFieldsOtherThanStatus() || in.Status == nil {
			return nil, domainContract.ErrActiveImmutable
		}
		if *in.Status != domainContract.StatusTerminated {
			return nil, domainContract.ErrActiveImmutable
		}
		res, err := u.Terminate(ctx, contractID, actor)
		if err != nil {
			return nil, err
		}
		return &CreateResult{RequiresApproval: res.RequiresApproval, RequestID: res.RequestID, Contract: res.Contract}, nil

	case domainContract.StatusExpired, domainContract.StatusTerminated:
		return nil, domainContract.ErrInvalidTransition
	}

	// Draft: field edits are free; activation is admin-only here.
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = *in.EndDate
	}
	if in.MonthlyRent != nil {
		c.MonthlyRent = *in.MonthlyRent
	}
	if in.SecurityDeposit != nil {
		c.SecurityDeposit = *in.SecurityDeposit
	}
	if in.PaymentFrequency != nil {
		if !domainContract.ValidFrequency(*in.PaymentFrequency) {
			return nil, valerr.New("invalid payment_frequency")
		}
		c.PaymentFrequency = *in.PaymentFrequency
	}
	if in.NumberOfInstallments != nil {
		c.NumberOfInstallments = *in.NumberOfInstallments
	}
	if in.DueDateDay != nil {
		if *in.DueDateDay < 1 || *in.DueDateDay > 31 {
			return nil, valerr.New("due_date_day must be between 1 and 31")
		}
		c.DueDateDay = in.DueDateDay
	}
	if in.Attachments != nil {
		c.Attachments = *in.Attachments
	}
	if c.EndDate.Before(c.StartDate) {
		return nil, valerr.New("end_date must not precede start_date")
	}

	activating := false
	if in.Status != nil && *in.Status != c.Status {
		switch *in.Status {
		case domainContract.StatusActive:
			if !actor.IsAdmin() {
				return nil, domainContract.ErrForbiddenTransition
			}
			activating = true
		default:
			return nil, domainContract.ErrInvalidTransition
		}
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if activating {
			c.Status = domainContract.StatusActive
			c.StatusUpdatedAt = time.Now().UTC()
			if err := checkExclusivity(ctx, r, c); err != nil {
				return err
			}
		}
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		if activating {
			return activate(ctx, r, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateResult{Contract: c}, nil
}

type terminatePayload struct {
	ContractID string `json:"contract_id"`
}

type TerminateResult struct {
	RequiresApproval  bool                     `json:"requires_approval"`
	RequestID         string                   `json:"request_id,omitempty"`
	Contract          *domainContract.Contract `json:"contract,omitempty"`
	CancelledInvoices int64                    `json:"cancelled_invoices"`
}

// Terminate is gated. The direct cascade: contract terminated, unit vacated,
// every open invoice cancelled — all in one transaction.
func (u *Usecase) Terminate(ctx context.Context, contractID string, actor auth.Actor) (*TerminateResult, error) {
	if !actor.IsAdmin() {
		req, err := domainApproval.NewPending(
			domainApproval.TypeContractTerminate, "contract", actor,
			terminatePayload{ContractID: contractID})
		if err != nil {
			return nil, err
		}
		if err := u.approvals.Create(ctx, req); err != nil {
			return nil, err
		}
		return &TerminateResult{RequiresApproval: true, RequestID: req.RequestID}, nil
	}

	var out TerminateResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			return err
		}
		if c.Status != domainContract.StatusActive {
			return domainContract.ErrInvalidTransition
		}
		c.Status = domainContract.StatusTerminated
		c.StatusUpdatedAt = time.Now().UTC()
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		unit, err := r.Units.GetByUnitID(ctx, c.UnitID)
		if err != nil {
			return err
		}
		unit.IsOccupied = false
		if err := r.Units.Save(ctx, unit); err != nil {
			return err
		}
		cancelled, err := r.Invoices.CancelOpenByContract(ctx, c.ContractID)
		if err != nil {
			return err
		}
		out.Contract = c
		out.CancelledInvoices = cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) Get(ctx context.Context, contractID string) (*domainContract.Contract, error) {
	return u.contracts.GetByContractID(ctx, contractID)
}

func (u *Usecase) List(ctx context.Context, f domainContract.ListFilter) ([]domainContract.Contract, error) {
	return u.contracts.List(ctx, f)
}
