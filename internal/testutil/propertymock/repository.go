package propertymock

import (
	"context"

	domain "rentdesk-backend/internal/domain/property"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Property) error
	GetByPropertyIDFn func(ctx context.Context, propertyID string) (*domain.Property, error)
	ListFn            func(ctx context.Context) ([]domain.Property, error)
	SaveFn            func(ctx context.Context, p *domain.Property) error
	DeleteFn          func(ctx context.Context, propertyID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.Property, error) {
	if m.GetByPropertyIDFn != nil {
		return m.GetByPropertyIDFn(ctx, propertyID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Property, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Property) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, propertyID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, propertyID)
	}
	return nil
}

// UnitRepo is a function-backed mock that satisfies domain.UnitRepository.
type UnitRepo struct {
	CreateFn          func(ctx context.Context, u *domain.Unit) error
	GetByUnitIDFn     func(ctx context.Context, unitID string) (*domain.Unit, error)
	ListFn            func(ctx context.Context, propertyID string) ([]domain.Unit, error)
	SaveFn            func(ctx context.Context, u *domain.Unit) error
	DeleteFn          func(ctx context.Context, unitID string) error
	CountByPropertyFn func(ctx context.Context, propertyID string) (int64, error)
}

func (m *UnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *UnitRepo) GetByUnitID(ctx context.Context, unitID string) (*domain.Unit, error) {
	if m.GetByUnitIDFn != nil {
		return m.GetByUnitIDFn(ctx, unitID)
	}
	return nil, context.Canceled
}

func (m *UnitRepo) List(ctx context.Context, propertyID string) ([]domain.Unit, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *UnitRepo) Save(ctx context.Context, u *domain.Unit) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *UnitRepo) Delete(ctx context.Context, unitID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, unitID)
	}
	return nil
}

func (m *UnitRepo) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	if m.CountByPropertyFn != nil {
		return m.CountByPropertyFn(ctx, propertyID)
	}
	return 0, nil
}
