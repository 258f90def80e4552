package billing

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvoiceClosed   = errors.New("invoice is cancelled or already fully paid")
	// Admin invoice edits may touch status and notes only.
	ErrInvoiceEditRestricted = errors.New("only invoice status and notes are editable")
)

// ErrEarlierInstallmentUnpaid rejects a payment on installment N while an
// earlier installment still carries a balance, naming the blocker.
type ErrEarlierInstallmentUnpaid struct {
	InvoiceNumber     string
	InstallmentNumber int
}

func (e *ErrEarlierInstallmentUnpaid) Error() string {
	return fmt.Sprintf("installment %d (%s) must be fully paid first",
		e.InstallmentNumber, e.InvoiceNumber)
}

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePartial   InvoiceStatus = "partial"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoicePending, InvoicePartial, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCheque   PaymentMethod = "cheque"
	MethodTransfer PaymentMethod = "bank_transfer"
	MethodCard     PaymentMethod = "card"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCheque, MethodTransfer, MethodCard:
		return true
	}
	return false
}

type Invoice struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvoiceID     string `gorm:"column:invoice_id;type:char(32);not null;uniqueIndex:ux_invoices_invoice_id" json:"invoice_id"`
	ContractID    string `gorm:"column:contract_id;type:char(32);not null;index:idx_invoices_contract" json:"contract_id"`
	InvoiceNumber string `gorm:"column:invoice_number;size:32;not null" json:"invoice_number"`
	// 1-based, contiguous within a contract.
	InstallmentNumber int           `gorm:"column:installment_number;not null" json:"installment_number"`
	DueDate           time.Time     `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Amount            float64       `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaidAmount        float64       `gorm:"column:paid_amount;type:decimal(18,2);not null;default:0" json:"paid_amount"`
	RemainingAmount   float64       `gorm:"column:remaining_amount;type:decimal(18,2);not null" json:"remaining_amount"`
	Status            InvoiceStatus `gorm:"column:status;size:16;not null;default:'pending';index:idx_invoices_status" json:"status"`
	Notes             string        `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt         time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// Open reports whether the invoice still participates in collection
// (pending, partial or overdue).
func (i *Invoice) Open() bool {
	switch i.Status {
	case InvoicePending, InvoicePartial, InvoiceOverdue:
		return true
	}
	return false
}

type Payment struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	PaymentID       string         `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	InvoiceID       string         `gorm:"column:invoice_id;type:char(32);not null;index:idx_payments_invoice" json:"invoice_id"`
	Amount          float64        `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaymentDate     time.Time      `gorm:"column:payment_date;type:date;not null" json:"payment_date"`
	Method          PaymentMethod  `gorm:"column:method;size:16;not null" json:"method"`
	ReferenceNumber string         `gorm:"column:reference_number;size:64" json:"reference_number"`
	Notes           string         `gorm:"column:notes;type:text" json:"notes"`
	RecordedBy      string         `gorm:"column:recorded_by;type:char(32)" json:"recorded_by"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
