package gormrepo

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	approvalDomain "rentdesk-backend/internal/domain/approval"
	billingDomain "rentdesk-backend/internal/domain/billing"
	contractDomain "rentdesk-backend/internal/domain/contract"
	directoryDomain "rentdesk-backend/internal/domain/directory"
	propertyDomain "rentdesk-backend/internal/domain/property"
	tenantDomain "rentdesk-backend/internal/domain/tenant"
)

// openTestDB gives each test its own in-memory sqlite with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&directoryDomain.User{},
		&propertyDomain.Property{},
		&propertyDomain.Unit{},
		&tenantDomain.Tenant{},
		&contractDomain.Contract{},
		&billingDomain.Invoice{},
		&billingDomain.Payment{},
		&approvalDomain.Request{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
