package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	GetByTenantID(ctx context.Context, tenantID string) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	Save(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, tenantID string) error
}
