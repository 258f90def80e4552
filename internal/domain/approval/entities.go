package approval

import (
	"encoding/json"
	"errors"
	"time"

	"rentdesk-backend/internal/domain/auth"
	"rentdesk-backend/pkg/id"
)

var (
	ErrNotFound       = errors.New("approval request not found")
	ErrNotPending     = errors.New("approval request is not pending")
	ErrReasonRequired = errors.New("rejection reason is required")
	ErrUnknownType    = errors.New("unknown approval request type")
)

type RequestType string

const (
	TypeTenantCreate      RequestType = "tenant_create"
	TypeContractCreate    RequestType = "contract_create"
	TypeContractTerminate RequestType = "contract_terminate"
	TypePaymentCreate     RequestType = "payment_create"
	TypePaymentDelete     RequestType = "payment_delete"
	// Reserved; no replay target yet.
	TypeContractCancel RequestType = "contract_cancel"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a deferred mutation awaiting an admin decision. RequestData is
// an opaque snapshot of the intended mutation's input; it stays editable
// while pending and is replayed verbatim on approval.
type Request struct {
	ID          uint64      `gorm:"primaryKey;column:id" json:"-"`
	RequestID   string      `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_approval_requests_request_id" json:"request_id"`
	RequestType RequestType `gorm:"column:request_type;size:32;not null;index:idx_approval_requests_type" json:"request_type"`
	RequestedBy string      `gorm:"column:requested_by;type:char(32);not null;index:idx_approval_requests_requester" json:"requested_by"`
	ApprovedBy  *string     `gorm:"column:approved_by;type:char(32)" json:"approved_by,omitempty"`
	Status      Status      `gorm:"column:status;size:16;not null;default:'pending';index:idx_approval_requests_status" json:"status"`
	EntityType  string      `gorm:"column:entity_type;size:32;not null" json:"entity_type"`
	// EntityID is populated only after a successful replay.
	EntityID        *string         `gorm:"column:entity_id;type:char(32)" json:"entity_id,omitempty"`
	RequestData     json.RawMessage `gorm:"column:request_data;type:json;not null" json:"request_data"`
	RejectionReason string          `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time      `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "approval_requests" }

// NewPending snapshots a gated mutation for later review.
func NewPending(t RequestType, entityType string, actor auth.Actor, payload any) (*Request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Request{
		RequestID:   id.NewID32(),
		RequestType: t,
		RequestedBy: actor.ID,
		Status:      StatusPending,
		EntityType:  entityType,
		RequestData: raw,
	}, nil
}
