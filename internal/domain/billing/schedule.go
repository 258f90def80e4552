package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rentdesk-backend/internal/domain/contract"
	"rentdesk-backend/pkg/id"
	"rentdesk-backend/pkg/money"
)

var ErrBadSchedule = errors.New("contract dates or payment frequency do not form a schedule")

// BuildSchedule derives the full invoice sequence for a contract. Pure: the
// caller persists the batch. Installments are 1-based and contiguous, and
// always sum to round2(monthlyRent * months) — split remainders land on the
// final installment.
func BuildSchedule(c *contract.Contract) ([]*Invoice, error) {
	if c.EndDate.Before(c.StartDate) {
		return nil, ErrBadSchedule
	}
	months := monthsBetween(c.StartDate, c.EndDate)
	if months < 1 {
		months = 1
	}
	total := money.Round2(c.MonthlyRent * float64(months))

	var interval, count int
	switch c.PaymentFrequency {
	case contract.FreqMonthly:
		interval, count = 1, months
	case contract.Freq1Payment:
		interval, count = 12, 1
	case contract.Freq2Payment:
		interval, count = 6, 2
	case contract.Freq3Payment:
		interval, count = 4, 3
	case contract.Freq4Payment:
		interval, count = 3, 4
	default:
		return nil, ErrBadSchedule
	}
	if c.NumberOfInstallments > 0 && c.PaymentFrequency == contract.FreqMonthly {
		// The stored installment count is authoritative for monthly plans
		// that bill a sub-range (e.g. mid-term activation).
		count = c.NumberOfInstallments
	}

	per := money.Round2(total / float64(count))
	invoices := make([]*Invoice, 0, count)
	allocated := 0.0
	for i := 0; i < count; i++ {
		amount := per
		if c.PaymentFrequency == contract.FreqMonthly {
			amount = c.MonthlyRent
		}
		if i == count-1 {
			amount = money.Round2(total - allocated)
		}
		allocated = money.Round2(allocated + amount)

		inv := &Invoice{
			InvoiceID:         id.NewID32(),
			ContractID:        c.ContractID,
			InvoiceNumber:     InvoiceNumber(c.ContractID, i+1),
			InstallmentNumber: i + 1,
			DueDate:           dueDate(c.StartDate, i*interval, c.DueDateDay),
			Amount:            amount,
			PaidAmount:        0,
			RemainingAmount:   amount,
			Status:            InvoicePending,
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// InvoiceNumber is deterministic: contract id suffix plus zero-padded
// installment index.
func InvoiceNumber(contractID string, installment int) string {
	return fmt.Sprintf("INV-%s-%03d", strings.ToUpper(id.Suffix(contractID, 6)), installment)
}

// monthsBetween is the calendar month difference, minimum handled by caller.
func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// dueDate advances start by offsetMonths and clamps the day-of-month to
// dueDay when set (never past the month's last day).
func dueDate(start time.Time, offsetMonths int, dueDay *int) time.Time {
	y, m, d := start.Date()
	base := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, offsetMonths, 0)
	day := d
	if dueDay != nil && *dueDay >= 1 && *dueDay <= 31 {
		day = *dueDay
	}
	if last := daysIn(base.Year(), base.Month()); day > last {
		day = last
	}
	return time.Date(base.Year(), base.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
