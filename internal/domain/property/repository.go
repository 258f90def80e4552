package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByPropertyID(ctx context.Context, propertyID string) (*Property, error)
	List(ctx context.Context) ([]Property, error)
	Save(ctx context.Context, p *Property) error
	Delete(ctx context.Context, propertyID string) error
}

type UnitRepository interface {
	Create(ctx context.Context, u *Unit) error
	GetByUnitID(ctx context.Context, unitID string) (*Unit, error)
	// List returns all units, or the units of one property when propertyID != "".
	List(ctx context.Context, propertyID string) ([]Unit, error)
	Save(ctx context.Context, u *Unit) error
	Delete(ctx context.Context, unitID string) error
	CountByProperty(ctx context.Context, propertyID string) (int64, error)
}
