package gormrepo

import (
	"context"
	"errors"

	propertyDomain "rentdesk-backend/internal/domain/property"

	"gorm.io/gorm"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, propertyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PropertyRepository) List(ctx context.Context) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, propertyID string) error {
	return r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&propertyDomain.Property{}).Error
}

type UnitRepository struct{ db *gorm.DB }

func NewUnitRepository(db *gorm.DB) *UnitRepository { return &UnitRepository{db: db} }

func (r *UnitRepository) Create(ctx context.Context, u *propertyDomain.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UnitRepository) GetByUnitID(ctx context.Context, unitID string) (*propertyDomain.Unit, error) {
	var out propertyDomain.Unit
	res := r.db.WithContext(ctx).Where("unit_id = ?", unitID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, propertyDomain.ErrUnitNotFound
	}
	return &out, res.Error
}

func (r *UnitRepository) List(ctx context.Context, propertyID string) ([]propertyDomain.Unit, error) {
	var out []propertyDomain.Unit
	q := r.db.WithContext(ctx).Order("unit_number ASC")
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *UnitRepository) Save(ctx context.Context, u *propertyDomain.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UnitRepository) Delete(ctx context.Context, unitID string) error {
	return r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Delete(&propertyDomain.Unit{}).Error
}

func (r *UnitRepository) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&propertyDomain.Unit{}).
		Where("property_id = ?", propertyID).
		Count(&n)
	return n, res.Error
}
