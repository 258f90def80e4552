package gormrepo

import (
	"context"
	"errors"

	tenantDomain "rentdesk-backend/internal/domain/tenant"

	"gorm.io/gorm"
)

type TenantRepository struct{ db *gorm.DB }

func NewTenantRepository(db *gorm.DB) *TenantRepository { return &TenantRepository{db: db} }

func (r *TenantRepository) Create(ctx context.Context, t *tenantDomain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TenantRepository) GetByTenantID(ctx context.Context, tenantID string) (*tenantDomain.Tenant, error) {
	var out tenantDomain.Tenant
	res := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, tenantDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *TenantRepository) List(ctx context.Context) ([]tenantDomain.Tenant, error) {
	var out []tenantDomain.Tenant
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *TenantRepository) Save(ctx context.Context, t *tenantDomain.Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TenantRepository) Delete(ctx context.Context, tenantID string) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&tenantDomain.Tenant{}).Error
}
