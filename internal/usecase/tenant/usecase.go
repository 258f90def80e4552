package tenant

import (
	"context"
	"strings"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/pkg/id"
	"rentdesk-backend/pkg/valerr"
)

type Usecase struct {
	tenants   domainTenant.Repository
	contracts domainContract.Repository
	approvals domainApproval.Repository
}

func NewUsecase(tenants domainTenant.Repository, contracts domainContract.Repository, approvals domainApproval.Repository) *Usecase {
	return &Usecase{tenants: tenants, contracts: contracts, approvals: approvals}
}

// CreateTenantInput is also the approval snapshot payload, so field names
// must stay stable.
type CreateTenantInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IDType         string `json:"id_type"`
	IDNumber       string `json:"id_number"`
	Nationality    string `json:"nationality"`
	PreferredLang  string `json:"preferred_lang"`
	ContactByEmail bool   `json:"contact_by_email"`
	Notes          string `json:"notes"`
}

type CreateResult struct {
	RequiresApproval bool                 `json:"requires_approval"`
	RequestID        string               `json:"request_id,omitempty"`
	Tenant           *domainTenant.Tenant `json:"tenant,omitempty"`
}

// Create is a gated operation: non-admin actors get a pending approval
// request instead of a tenant row.
func (u *Usecase) Create(ctx context.Context, in CreateTenantInput, actor auth.Actor) (*CreateResult, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, valerr.New("tenant name is required")
	}
	if in.IDType != "" && strings.TrimSpace(in.IDNumber) == "" {
		return nil, domainTenant.ErrIDNumberRequired
	}

	if !actor.IsAdmin() {
		req, err := domainApproval.NewPending(domainApproval.TypeTenantCreate, "tenant", actor, in)
		if err != nil {
			return nil, err
		}
		if err := u.approvals.Create(ctx, req); err != nil {
			return nil, err
		}
		return &CreateResult{RequiresApproval: true, RequestID: req.RequestID}, nil
	}

	t := &domainTenant.Tenant{
		TenantID:       id.NewID32(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		IDType:         in.IDType,
		IDNumber:       in.IDNumber,
		Nationality:    in.Nationality,
		PreferredLang:  in.PreferredLang,
		ContactByEmail: in.ContactByEmail,
		Notes:          in.Notes,
	}
	if err := u.tenants.Create(ctx, t); err != nil {
		return nil, err
	}
	return &CreateResult{Tenant: t}, nil
}

type UpdateTenantInput struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	IDType         *string `json:"id_type,omitempty"`
	IDNumber       *string `json:"id_number,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	PreferredLang  *string `json:"preferred_lang,omitempty"`
	ContactByEmail *bool   `json:"contact_by_email,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Update is not gated (only creation is, matching the gated-operation set).
func (u *Usecase) Update(ctx context.Context, tenantID string, in UpdateTenantInput) (*domainTenant.Tenant, error) {
	t, err := u.tenants.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.IDType != nil {
		t.IDType = *in.IDType
	}
	if in.IDNumber != nil {
		t.IDNumber = *in.IDNumber
	}
	if in.Nationality != nil {
		t.Nationality = *in.Nationality
	}
	if in.PreferredLang != nil {
		t.PreferredLang = *in.PreferredLang
	}
	if in.ContactByEmail != nil {
		t.ContactByEmail = *in.ContactByEmail
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	if t.IDType != "" && strings.TrimSpace(t.IDNumber) == "" {
		return nil, domainTenant.ErrIDNumberRequired
	}
	if err := u.tenants.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) Get(ctx context.Context, tenantID string) (*domainTenant.Tenant, error) {
	return u.tenants.GetByTenantID(ctx, tenantID)
}

func (u *Usecase) List(ctx context.Context) ([]domainTenant.Tenant, error) {
	return u.tenants.List(ctx)
}

// Delete refuses while any contract still references the tenant.
func (u *Usecase) Delete(ctx context.Context, tenantID string) error {
	if _, err := u.tenants.GetByTenantID(ctx, tenantID); err != nil {
		return err
	}
	n, err := u.contracts.CountByTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domainTenant.ErrInUse
	}
	return u.tenants.Delete(ctx, tenantID)
}
