package contract

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("contract not found")
	// Validation failures surfaced to form flows as {success:false, message}.
	ErrUnitOverlap        = errors.New("unit already has an active contract for an overlapping period")
	ErrTenantActiveExists = errors.New("tenant already has an active contract")
	// Invariant violations: programming/authorization errors, not user input.
	ErrActiveImmutable     = errors.New("active contract fields are immutable except termination")
	ErrInvalidTransition   = errors.New("invalid contract status transition")
	ErrForbiddenTransition = errors.New("non-admin may not activate a contract outside the approval path")
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
)

type PaymentFrequency string

const (
	FreqMonthly  PaymentFrequency = "monthly"
	Freq1Payment PaymentFrequency = "1_payment"
	Freq2Payment PaymentFrequency = "2_payment"
	Freq3Payment PaymentFrequency = "3_payment"
	Freq4Payment PaymentFrequency = "4_payment"
)

func ValidFrequency(f PaymentFrequency) bool {
	switch f {
	case FreqMonthly, Freq1Payment, Freq2Payment, Freq3Payment, Freq4Payment:
		return true
	}
	return false
}

type Contract struct {
	ID                   uint64           `gorm:"primaryKey;column:id" json:"-"`
	ContractID           string           `gorm:"column:contract_id;type:char(32);not null;uniqueIndex:ux_contracts_contract_id" json:"contract_id"`
	TenantID             string           `gorm:"column:tenant_id;type:char(32);not null;index:idx_contracts_tenant" json:"tenant_id"`
	UnitID               string           `gorm:"column:unit_id;type:char(32);not null;index:idx_contracts_unit" json:"unit_id"`
	StartDate            time.Time        `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate              time.Time        `gorm:"column:end_date;type:date;not null" json:"end_date"`
	MonthlyRent          float64          `gorm:"column:monthly_rent;type:decimal(18,2);not null" json:"monthly_rent"`
	SecurityDeposit      float64          `gorm:"column:security_deposit;type:decimal(18,2)" json:"security_deposit"`
	PaymentFrequency     PaymentFrequency `gorm:"column:payment_frequency;size:16;not null" json:"payment_frequency"`
	NumberOfInstallments int              `gorm:"column:number_of_installments;not null" json:"number_of_installments"`
	Status               Status           `gorm:"column:status;size:16;not null;default:'draft';index:idx_contracts_status" json:"status"`
	// DueDateDay clamps each installment's due day-of-month when set (1-31).
	DueDateDay      *int           `gorm:"column:due_date_day" json:"due_date_day,omitempty"`
	Attachments     []string       `gorm:"column:attachments;serializer:json;type:json" json:"attachments"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Contract) TableName() string { return "contracts" }

// Overlaps reports whether [start,end] intersects this contract's period.
func (c *Contract) Overlaps(start, end time.Time) bool {
	return !start.After(c.EndDate) && !end.Before(c.StartDate)
}
