package billing

import (
	"context"
	"fmt"
	"time"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainBilling "rentdesk-backend/internal/domain/billing"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/internal/domain/uow"
	"rentdesk-backend/pkg/dateonly"
	"rentdesk-backend/pkg/id"
	"rentdesk-backend/pkg/money"
	"rentdesk-backend/pkg/msglink"
	"rentdesk-backend/pkg/valerr"
)

type Usecase struct {
	invoices  domainBilling.InvoiceRepository
	payments  domainBilling.PaymentRepository
	contracts domainContract.Repository
	tenants   domainTenant.Repository
	approvals domainApproval.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(
	invoices domainBilling.InvoiceRepository,
	payments domainBilling.PaymentRepository,
	contracts domainContract.Repository,
	tenants domainTenant.Repository,
	approvals domainApproval.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{invoices: invoices, payments: payments, contracts: contracts, tenants: tenants, approvals: approvals, uow: tx}
}

// CreatePaymentInput doubles as the approval snapshot payload. The date
// rides as dateonly so a pending-request edit in API format replays cleanly.
type CreatePaymentInput struct {
	InvoiceID       string                      `json:"invoice_id"`
	Amount          float64                     `json:"amount"`
	PaymentDate     dateonly.Date               `json:"payment_date"`
	Method          domainBilling.PaymentMethod `json:"method"`
	ReferenceNumber string                      `json:"reference_number,omitempty"`
	Notes           string                      `json:"notes,omitempty"`
}

type PaymentResult struct {
	RequiresApproval bool                   `json:"requires_approval"`
	RequestID        string                 `json:"request_id,omitempty"`
	Payment          *domainBilling.Payment `json:"payment,omitempty"`
	Invoice          *domainBilling.Invoice `json:"invoice,omitempty"`
}

// CreatePayment is gated. The direct path locks the invoice, enforces the
// sequential-installment rule and reconciles the balance in one transaction.
func (u *Usecase) CreatePayment(ctx context.Context, in CreatePaymentInput, actor auth.Actor) (*PaymentResult, error) {
	if in.InvoiceID == "" {
		return nil, valerr.New("invoice_id is required")
	}
	if in.Amount <= 0 {
		return nil, valerr.New("payment amount must be positive")
	}
	if !domainBilling.ValidPaymentMethod(in.Method) {
		return nil, valerr.New("invalid payment method")
	}

	if !actor.IsAdmin() {
		req, err := domainApproval.NewPending(domainApproval.TypePaymentCreate, "payment", actor, in)
		if err != nil {
			return nil, err
		}
		if err := u.approvals.Create(ctx, req); err != nil {
			return nil, err
		}
		return &PaymentResult{RequiresApproval: true, RequestID: req.RequestID}, nil
	}

	var out PaymentResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Invoices.GetByInvoiceIDForUpdate(ctx, in.InvoiceID)
		if err != nil {
			return err
		}
		if !inv.Open() {
			return domainBilling.ErrInvoiceClosed
		}
		if err := checkEarlierInstallments(ctx, r, inv); err != nil {
			return err
		}

		date := in.PaymentDate.Time
		if date.IsZero() {
			date = time.Now().UTC()
		}
		p := &domainBilling.Payment{
			PaymentID:       id.NewID32(),
			InvoiceID:       inv.InvoiceID,
			Amount:          money.Round2(in.Amount),
			PaymentDate:     date,
			Method:          in.Method,
			ReferenceNumber: in.ReferenceNumber,
			Notes:           in.Notes,
			RecordedBy:      actor.ID,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		inv.ApplyPayment(p.Amount)
		if err := r.Invoices.Save(ctx, inv); err != nil {
			return err
		}
		out.Payment = p
		out.Invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// checkEarlierInstallments rejects payment while any earlier installment of
// the same contract still carries a balance above tolerance.
func checkEarlierInstallments(ctx context.Context, r uow.Repos, inv *domainBilling.Invoice) error {
	all, err := r.Invoices.ListByContract(ctx, inv.ContractID)
	if err != nil {
		return err
	}
	for i := range all {
		prev := &all[i]
		if prev.InstallmentNumber >= inv.InstallmentNumber {
			break
		}
		if prev.Status == domainBilling.InvoiceCancelled {
			continue
		}
		if prev.RemainingAmount > money.Tolerance {
			return &domainBilling.ErrEarlierInstallmentUnpaid{
				InvoiceNumber:     prev.InvoiceNumber,
				InstallmentNumber: prev.InstallmentNumber,
			}
		}
	}
	return nil
}

type deletePaymentPayload struct {
	PaymentID string `json:"payment_id"`
}

type DeletePaymentResult struct {
	RequiresApproval bool                   `json:"requires_approval"`
	RequestID        string                 `json:"request_id,omitempty"`
	Invoice          *domainBilling.Invoice `json:"invoice,omitempty"`
}

// DeletePayment is gated. Deletion reverses the payment's effect on the
// owning invoice in the same transaction.
func (u *Usecase) DeletePayment(ctx context.Context, paymentID string, actor auth.Actor) (*DeletePaymentResult, error) {
	if !actor.IsAdmin() {
		req, err := domainApproval.NewPending(
			domainApproval.TypePaymentDelete, "payment", actor,
			deletePaymentPayload{PaymentID: paymentID})
		if err != nil {
			return nil, err
		}
		if err := u.approvals.Create(ctx, req); err != nil {
			return nil, err
		}
		return &DeletePaymentResult{RequiresApproval: true, RequestID: req.RequestID}, nil
	}

	var out DeletePaymentResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return err
		}
		inv, err := r.Invoices.GetByInvoiceIDForUpdate(ctx, p.InvoiceID)
		if err != nil {
			return err
		}
		if err := r.Payments.Delete(ctx, p.PaymentID); err != nil {
			return err
		}
		inv.ReversePayment(p.Amount)
		if err := r.Invoices.Save(ctx, inv); err != nil {
			return err
		}
		out.Invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) GetInvoice(ctx context.Context, invoiceID string) (*domainBilling.Invoice, error) {
	return u.invoices.GetByInvoiceID(ctx, invoiceID)
}

func (u *Usecase) ListInvoices(ctx context.Context, contractID string) ([]domainBilling.Invoice, error) {
	return u.invoices.ListByContract(ctx, contractID)
}

func (u *Usecase) ListPayments(ctx context.Context, invoiceID string) ([]domainBilling.Payment, error) {
	return u.payments.ListByInvoice(ctx, invoiceID)
}

// UpdateInvoiceInput covers the direct admin edit surface: status and notes
// only; amounts belong to the reconciler.
type UpdateInvoiceInput struct {
	Status *domainBilling.InvoiceStatus `json:"status,omitempty"`
	Notes  *string                      `json:"notes,omitempty"`
}

func (u *Usecase) UpdateInvoice(ctx context.Context, invoiceID string, in UpdateInvoiceInput) (*domainBilling.Invoice, error) {
	inv, err := u.invoices.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !domainBilling.ValidInvoiceStatus(*in.Status) {
			return nil, domainBilling.ErrInvoiceEditRestricted
		}
		inv.Status = *in.Status
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if err := u.invoices.Save(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// MarkOverdue is the synchronous sweep the UI triggers; no scheduler runs
// server-side.
func (u *Usecase) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return u.invoices.MarkOverdue(ctx, asOf)
}

type ReminderLinks struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Message  string `json:"message"`
}

// ReminderLinks builds messaging deep links with invoice details
// interpolated verbatim; nothing is sent from the backend.
func (u *Usecase) ReminderLinks(ctx context.Context, invoiceID string) (*ReminderLinks, error) {
	inv, err := u.invoices.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	c, err := u.contracts.GetByContractID(ctx, inv.ContractID)
	if err != nil {
		return nil, err
	}
	t, err := u.tenants.GetByTenantID(ctx, c.TenantID)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf(
		"Dear %s, invoice %s of %.2f is due on %s. Paid so far: %.2f, outstanding: %.2f.",
		t.Name, inv.InvoiceNumber, inv.Amount,
		inv.DueDate.Format("2006-01-02"),
		inv.PaidAmount, inv.RemainingAmount,
	)
	out := &ReminderLinks{Message: msg}
	if t.Phone != "" {
		out.WhatsApp = msglink.WhatsApp(t.Phone, msg)
	}
	if t.Email != "" {
		out.Email = msglink.Mailto(t.Email, "Rent invoice "+inv.InvoiceNumber, msg)
	}
	return out, nil
}
