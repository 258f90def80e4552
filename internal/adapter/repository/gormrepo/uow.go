package gormrepo

import (
	"context"

	"rentdesk-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Properties: &PropertyRepository{db: tx},
			Units:      &UnitRepository{db: tx},
			Tenants:    &TenantRepository{db: tx},
			Contracts:  &ContractRepository{db: tx},
			Invoices:   &InvoiceRepository{db: tx},
			Payments:   &PaymentRepository{db: tx},
			Approvals:  &ApprovalRepository{db: tx},
		})
	})
}
