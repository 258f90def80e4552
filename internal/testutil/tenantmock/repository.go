package tenantmock

import (
	"context"

	domain "rentdesk-backend/internal/domain/tenant"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn        func(ctx context.Context, t *domain.Tenant) error
	GetByTenantIDFn func(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListFn          func(ctx context.Context) ([]domain.Tenant, error)
	SaveFn          func(ctx context.Context, t *domain.Tenant) error
	DeleteFn        func(ctx context.Context, tenantID string) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Tenant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTenantID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	if m.GetByTenantIDFn != nil {
		return m.GetByTenantIDFn(ctx, tenantID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Tenant, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Tenant) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, tenantID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, tenantID)
	}
	return nil
}
