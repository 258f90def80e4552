package contract

import "context"

type ListFilter struct {
	TenantID string
	UnitID   string
	Status   Status
}

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	// GetByContractIDForUpdate locks the row inside a transaction (FOR UPDATE
	// where the backend supports it).
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)
	List(ctx context.Context, f ListFilter) ([]Contract, error)
	Save(ctx context.Context, c *Contract) error

	// ListActiveByUnit returns active contracts on the unit; the caller
	// applies the date-overlap check.
	ListActiveByUnit(ctx context.Context, unitID string) ([]Contract, error)
	GetActiveByTenant(ctx context.Context, tenantID string) (*Contract, error)

	CountByUnit(ctx context.Context, unitID string) (int64, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}
