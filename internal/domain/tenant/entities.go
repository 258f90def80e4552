package tenant

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("tenant not found")
	ErrInUse    = errors.New("tenant is referenced by a contract and cannot be deleted")
	// ID number must accompany an ID type (form-level invariant).
	ErrIDNumberRequired = errors.New("id_number is required when id_type is set")
)

type Tenant struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	TenantID string `gorm:"column:tenant_id;type:char(32);not null;uniqueIndex:ux_tenants_tenant_id" json:"tenant_id"`
	Name     string `gorm:"column:name;size:255;not null" json:"name"`
	Email    string `gorm:"column:email;size:255" json:"email"`
	Phone    string `gorm:"column:phone;size:32" json:"phone"`
	// Identification document, e.g. passport or national id.
	IDType         string         `gorm:"column:id_type;size:32" json:"id_type"`
	IDNumber       string         `gorm:"column:id_number;size:64" json:"id_number"`
	Nationality    string         `gorm:"column:nationality;size:128" json:"nationality"`
	PreferredLang  string         `gorm:"column:preferred_lang;size:8" json:"preferred_lang"`
	ContactByEmail bool           `gorm:"column:contact_by_email;default:true" json:"contact_by_email"`
	Notes          string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Tenant) TableName() string { return "tenants" }
