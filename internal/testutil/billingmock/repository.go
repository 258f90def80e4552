package billingmock

import (
	"context"
	"time"

	domain "rentdesk-backend/internal/domain/billing"
)

// InvoiceRepo is a function-backed mock that satisfies
// domain.InvoiceRepository. Only fill in the fields a test needs.
type InvoiceRepo struct {
	CreateBatchFn             func(ctx context.Context, invoices []*domain.Invoice) error
	GetByInvoiceIDFn          func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	GetByInvoiceIDForUpdateFn func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListByContractFn          func(ctx context.Context, contractID string) ([]domain.Invoice, error)
	CountByContractFn         func(ctx context.Context, contractID string) (int64, error)
	SaveFn                    func(ctx context.Context, i *domain.Invoice) error
	CancelOpenByContractFn    func(ctx context.Context, contractID string) (int64, error)
	MarkOverdueFn             func(ctx context.Context, asOf time.Time) (int64, error)
}

func (m *InvoiceRepo) CreateBatch(ctx context.Context, invoices []*domain.Invoice) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, invoices)
	}
	return nil
}

func (m *InvoiceRepo) GetByInvoiceID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.GetByInvoiceIDFn != nil {
		return m.GetByInvoiceIDFn(ctx, invoiceID)
	}
	return nil, context.Canceled
}

func (m *InvoiceRepo) GetByInvoiceIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.GetByInvoiceIDForUpdateFn != nil {
		return m.GetByInvoiceIDForUpdateFn(ctx, invoiceID)
	}
	return nil, context.Canceled
}

func (m *InvoiceRepo) ListByContract(ctx context.Context, contractID string) ([]domain.Invoice, error) {
	if m.ListByContractFn != nil {
		return m.ListByContractFn(ctx, contractID)
	}
	return nil, nil
}

func (m *InvoiceRepo) CountByContract(ctx context.Context, contractID string) (int64, error) {
	if m.CountByContractFn != nil {
		return m.CountByContractFn(ctx, contractID)
	}
	return 0, nil
}

func (m *InvoiceRepo) Save(ctx context.Context, i *domain.Invoice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *InvoiceRepo) CancelOpenByContract(ctx context.Context, contractID string) (int64, error) {
	if m.CancelOpenByContractFn != nil {
		return m.CancelOpenByContractFn(ctx, contractID)
	}
	return 0, nil
}

func (m *InvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.MarkOverdueFn != nil {
		return m.MarkOverdueFn(ctx, asOf)
	}
	return 0, nil
}

// PaymentRepo is a function-backed mock that satisfies
// domain.PaymentRepository.
type PaymentRepo struct {
	CreateFn         func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByInvoiceFn  func(ctx context.Context, invoiceID string) ([]domain.Payment, error)
	DeleteFn         func(ctx context.Context, paymentID string) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	if m.ListByInvoiceFn != nil {
		return m.ListByInvoiceFn(ctx, invoiceID)
	}
	return nil, nil
}

func (m *PaymentRepo) Delete(ctx context.Context, paymentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, paymentID)
	}
	return nil
}
