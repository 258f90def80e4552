package billing

import "rentdesk-backend/pkg/money"

// ApplyPayment folds a payment amount into the invoice totals. Rounding
// happens at each step, not at display time, so repeated partials cannot
// drift. Status is derived from the resulting balance: an overdue invoice
// stays overdue until settled.
func (i *Invoice) ApplyPayment(amount float64) {
	newPaid := money.Round2(i.PaidAmount + amount)
	newRemaining := money.Round2(i.Amount - newPaid)
	if money.Settled(newRemaining) {
		i.PaidAmount = i.Amount
		i.RemainingAmount = 0
		i.Status = InvoicePaid
		return
	}
	i.PaidAmount = newPaid
	i.RemainingAmount = newRemaining
	if newPaid > 0 && i.Status == InvoicePending {
		i.Status = InvoicePartial
	}
}

// ReversePayment undoes a deleted payment's effect and recomputes status
// from the balance alone (paid / partial / pending). Overdue is re-derived
// by the due-date sweep, not here. Cancelled is terminal: the termination
// cascade closed the invoice and a reversal must not reopen it.
func (i *Invoice) ReversePayment(amount float64) {
	newPaid := money.Round2(i.PaidAmount - amount)
	if newPaid < 0 {
		newPaid = 0
	}
	i.PaidAmount = newPaid
	i.RemainingAmount = money.Round2(i.Amount - newPaid)
	if i.Status == InvoiceCancelled {
		return
	}
	switch {
	case money.Settled(i.RemainingAmount):
		i.PaidAmount = i.Amount
		i.RemainingAmount = 0
		i.Status = InvoicePaid
	case newPaid > 0:
		i.Status = InvoicePartial
	default:
		i.Status = InvoicePending
	}
}
