package property

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("property not found")
	ErrUnitNotFound = errors.New("unit not found")
	// Deletes are refused while dependent rows exist.
	ErrHasUnits  = errors.New("property has units and cannot be deleted")
	ErrUnitInUse = errors.New("unit is referenced by a contract and cannot be deleted")
)

type UnitType string

const (
	UnitStudio    UnitType = "studio"
	Unit1BR       UnitType = "1BR"
	Unit2BR       UnitType = "2BR"
	Unit3BR       UnitType = "3BR"
	Unit4BR       UnitType = "4BR"
	UnitPenthouse UnitType = "penthouse"
	UnitVilla     UnitType = "villa"
)

func ValidUnitType(t UnitType) bool {
	switch t {
	case UnitStudio, Unit1BR, Unit2BR, Unit3BR, Unit4BR, UnitPenthouse, UnitVilla:
		return true
	}
	return false
}

type Property struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	PropertyID string         `gorm:"column:property_id;type:char(32);not null;uniqueIndex:ux_properties_property_id" json:"property_id"`
	Name       string         `gorm:"column:name;size:255;not null" json:"name"`
	Address    string         `gorm:"column:address;type:text" json:"address"`
	City       string         `gorm:"column:city;size:128" json:"city"`
	Country    string         `gorm:"column:country;size:128" json:"country"`
	Active     bool           `gorm:"column:active;default:true" json:"active"`
	Images     []string       `gorm:"column:images;serializer:json;type:json" json:"images"`
	Notes      string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Property) TableName() string { return "properties" }

type Unit struct {
	ID         uint64   `gorm:"primaryKey;column:id" json:"-"`
	UnitID     string   `gorm:"column:unit_id;type:char(32);not null;uniqueIndex:ux_units_unit_id" json:"unit_id"`
	PropertyID string   `gorm:"column:property_id;type:char(32);not null;index:idx_units_property" json:"property_id"`
	UnitNumber string   `gorm:"column:unit_number;size:32;not null" json:"unit_number"`
	Bedrooms   int      `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms  int      `gorm:"column:bathrooms" json:"bathrooms"`
	SizeSqm    float64  `gorm:"column:size_sqm;type:decimal(10,2)" json:"size_sqm"`
	// MonthlyRent is the asking rent; the contracted rent lives on the Contract.
	MonthlyRent float64        `gorm:"column:monthly_rent;type:decimal(18,2)" json:"monthly_rent"`
	IsOccupied  bool           `gorm:"column:is_occupied;default:false" json:"is_occupied"`
	Type        UnitType       `gorm:"column:type;size:16;not null" json:"type"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Unit) TableName() string { return "units" }
