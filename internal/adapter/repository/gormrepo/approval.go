package gormrepo

import (
	"context"
	"errors"

	approvalDomain "rentdesk-backend/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Request) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRepository) GetByRequestID(ctx context.Context, requestID string) (*approvalDomain.Request, error) {
	var out approvalDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, approvalDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApprovalRepository) List(ctx context.Context, f approvalDomain.ListFilter) ([]approvalDomain.Request, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RequestedBy != "" {
		q = q.Where("requested_by = ?", f.RequestedBy)
	}
	var out []approvalDomain.Request
	res := q.Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) Save(ctx context.Context, a *approvalDomain.Request) error {
	return r.db.WithContext(ctx).Save(a).Error
}
