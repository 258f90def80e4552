package uow

import (
	"context"

	"rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/billing"
	"rentdesk-backend/internal/domain/contract"
	"rentdesk-backend/internal/domain/property"
	"rentdesk-backend/internal/domain/tenant"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Properties property.Repository
	Units      property.UnitRepository
	Tenants    tenant.Repository
	Contracts  contract.Repository
	Invoices   billing.InvoiceRepository
	Payments   billing.PaymentRepository
	Approvals  approval.Repository
}

// UnitOfWork runs multi-step mutations in a single DB transaction so that
// read-modify-write reconciliation cannot race across sessions.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
