package gormrepo

import (
	"context"
	"errors"

	contractDomain "rentdesk-backend/internal/domain/contract"

	"gorm.io/gorm"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, contractDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ContractRepository) GetByContractIDForUpdate(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := forUpdate(r.db.WithContext(ctx)).
		Where("contract_id = ?", contractID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, contractDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ContractRepository) List(ctx context.Context, f contractDomain.ListFilter) ([]contractDomain.Contract, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if f.TenantID != "" {
		q = q.Where("tenant_id = ?", f.TenantID)
	}
	if f.UnitID != "" {
		q = q.Where("unit_id = ?", f.UnitID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []contractDomain.Contract
	res := q.Find(&out)
	return out, res.Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) ListActiveByUnit(ctx context.Context, unitID string) ([]contractDomain.Contract, error) {
	var out []contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ?", unitID, contractDomain.StatusActive).
		Find(&out)
	return out, res.Error
}

func (r *ContractRepository) GetActiveByTenant(ctx context.Context, tenantID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", tenantID, contractDomain.StatusActive).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, contractDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ContractRepository) CountByUnit(ctx context.Context, unitID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&contractDomain.Contract{}).
		Where("unit_id = ?", unitID).
		Count(&n)
	return n, res.Error
}

func (r *ContractRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&contractDomain.Contract{}).
		Where("tenant_id = ?", tenantID).
		Count(&n)
	return n, res.Error
}
