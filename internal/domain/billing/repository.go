package billing

import (
	"context"
	"time"
)

type InvoiceRepository interface {
	CreateBatch(ctx context.Context, invoices []*Invoice) error
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Invoice, error)
	// GetByInvoiceIDForUpdate locks the row inside a transaction.
	GetByInvoiceIDForUpdate(ctx context.Context, invoiceID string) (*Invoice, error)
	// ListByContract returns the contract's invoices ordered by installment.
	ListByContract(ctx context.Context, contractID string) ([]Invoice, error)
	CountByContract(ctx context.Context, contractID string) (int64, error)
	Save(ctx context.Context, i *Invoice) error
	// CancelOpenByContract sets every pending/partial/overdue invoice of the
	// contract to cancelled and returns how many rows changed.
	CancelOpenByContract(ctx context.Context, contractID string) (int64, error)
	// MarkOverdue flags open pending/partial invoices due strictly before
	// asOf as overdue and returns how many rows changed.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]Payment, error)
	// Delete soft-deletes; the reconciliation reversal is the caller's job.
	Delete(ctx context.Context, paymentID string) error
}
