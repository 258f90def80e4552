package gormrepo

import (
	"context"
	"errors"
	"time"

	billingDomain "rentdesk-backend/internal/domain/billing"

	"gorm.io/gorm"
)

type InvoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

func (r *InvoiceRepository) CreateBatch(ctx context.Context, invoices []*billingDomain.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(invoices).Error
}

func (r *InvoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*billingDomain.Invoice, error) {
	var out billingDomain.Invoice
	res := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, billingDomain.ErrInvoiceNotFound
	}
	return &out, res.Error
}

func (r *InvoiceRepository) GetByInvoiceIDForUpdate(ctx context.Context, invoiceID string) (*billingDomain.Invoice, error) {
	var out billingDomain.Invoice
	res := forUpdate(r.db.WithContext(ctx)).
		Where("invoice_id = ?", invoiceID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, billingDomain.ErrInvoiceNotFound
	}
	return &out, res.Error
}

func (r *InvoiceRepository) ListByContract(ctx context.Context, contractID string) ([]billingDomain.Invoice, error) {
	var out []billingDomain.Invoice
	res := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvoiceRepository) CountByContract(ctx context.Context, contractID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&billingDomain.Invoice{}).
		Where("contract_id = ?", contractID).
		Count(&n)
	return n, res.Error
}

func (r *InvoiceRepository) Save(ctx context.Context, i *billingDomain.Invoice) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InvoiceRepository) CancelOpenByContract(ctx context.Context, contractID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&billingDomain.Invoice{}).
		Where("contract_id = ? AND status IN ?", contractID, []billingDomain.InvoiceStatus{
			billingDomain.InvoicePending, billingDomain.InvoicePartial, billingDomain.InvoiceOverdue,
		}).
		Update("status", billingDomain.InvoiceCancelled)
	return res.RowsAffected, res.Error
}

func (r *InvoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&billingDomain.Invoice{}).
		Where("due_date < ? AND status IN ?", asOf, []billingDomain.InvoiceStatus{
			billingDomain.InvoicePending, billingDomain.InvoicePartial,
		}).
		Update("status", billingDomain.InvoiceOverdue)
	return res.RowsAffected, res.Error
}

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *billingDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*billingDomain.Payment, error) {
	var out billingDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, billingDomain.ErrPaymentNotFound
	}
	return &out, res.Error
}

func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]billingDomain.Payment, error) {
	var out []billingDomain.Payment
	res := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) Delete(ctx context.Context, paymentID string) error {
	return r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Delete(&billingDomain.Payment{}).Error
}
