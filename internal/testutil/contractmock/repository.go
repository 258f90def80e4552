package contractmock

import (
	"context"

	domain "rentdesk-backend/internal/domain/contract"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn          func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	ListFn                     func(ctx context.Context, f domain.ListFilter) ([]domain.Contract, error)
	SaveFn                     func(ctx context.Context, c *domain.Contract) error
	ListActiveByUnitFn         func(ctx context.Context, unitID string) ([]domain.Contract, error)
	GetActiveByTenantFn        func(ctx context.Context, tenantID string) (*domain.Contract, error)
	CountByUnitFn              func(ctx context.Context, unitID string) (int64, error)
	CountByTenantFn            func(ctx context.Context, tenantID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Contract, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListActiveByUnit(ctx context.Context, unitID string) ([]domain.Contract, error) {
	if m.ListActiveByUnitFn != nil {
		return m.ListActiveByUnitFn(ctx, unitID)
	}
	return nil, nil
}

func (m *Repo) GetActiveByTenant(ctx context.Context, tenantID string) (*domain.Contract, error) {
	if m.GetActiveByTenantFn != nil {
		return m.GetActiveByTenantFn(ctx, tenantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CountByUnit(ctx context.Context, unitID string) (int64, error) {
	if m.CountByUnitFn != nil {
		return m.CountByUnitFn(ctx, unitID)
	}
	return 0, nil
}

func (m *Repo) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	if m.CountByTenantFn != nil {
		return m.CountByTenantFn(ctx, tenantID)
	}
	return 0, nil
}
