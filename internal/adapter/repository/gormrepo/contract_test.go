package gormrepo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractDomain "rentdesk-backend/internal/domain/contract"
	"rentdesk-backend/pkg/id"
)

func makeContract(unitID, tenantID string, status contractDomain.Status) *contractDomain.Contract {
	return &contractDomain.Contract{
		ContractID:       id.NewID32(),
		TenantID:         tenantID,
		UnitID:           unitID,
		StartDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent:      1200,
		PaymentFrequency: contractDomain.FreqMonthly,
		Status:           status,
		StatusUpdatedAt:  time.Now().UTC(),
	}
}

func TestContract_CreateAndGet(t *testing.T) {
	repo := NewContractRepository(openTestDB(t))
	ctx := context.Background()

	c := makeContract(strings.Repeat("u", 32), strings.Repeat("t", 32), contractDomain.StatusDraft)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByContractID(ctx, c.ContractID)
	if err != nil {
		t.Fatalf("GetByContractID: %v", err)
	}
	if got.TenantID != c.TenantID || got.Status != contractDomain.StatusDraft {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	if _, err := repo.GetByContractID(ctx, strings.Repeat("0", 32)); !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestContract_GetForUpdate(t *testing.T) {
	repo := NewContractRepository(openTestDB(t))
	ctx := context.Background()

	c := makeContract(strings.Repeat("u", 32), strings.Repeat("t", 32), contractDomain.StatusActive)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByContractIDForUpdate(ctx, c.ContractID)
	if err != nil {
		t.Fatalf("GetByContractIDForUpdate: %v", err)
	}
	if got.ContractID != c.ContractID {
		t.Fatalf("mismatch: %+v", got)
	}
}

func TestContract_ListFilters(t *testing.T) {
	repo := NewContractRepository(openTestDB(t))
	ctx := context.Background()

	unitA := strings.Repeat("1", 32)
	unitB := strings.Repeat("2", 32)
	tenantA := strings.Repeat("3", 32)
	tenantB := strings.Repeat("4", 32)

	mustCreate := func(c *contractDomain.Contract) {
		t.Helper()
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	mustCreate(makeContract(unitA, tenantA, contractDomain.StatusActive))
	mustCreate(makeContract(unitB, tenantA, contractDomain.StatusTerminated))
	mustCreate(makeContract(unitB, tenantB, contractDomain.StatusActive))

	byUnit, err := repo.List(ctx, contractDomain.ListFilter{UnitID: unitB})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byUnit) != 2 {
		t.Fatalf("by unit = %d, want 2", len(byUnit))
	}

	byStatus, err := repo.List(ctx, contractDomain.ListFilter{Status: contractDomain.StatusActive})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byStatus) != 2 {
		t.Fatalf("by status = %d, want 2", len(byStatus))
	}

	both, err := repo.List(ctx, contractDomain.ListFilter{TenantID: tenantA, Status: contractDomain.StatusActive})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(both) != 1 || both[0].UnitID != unitA {
		t.Fatalf("combined filter wrong: %+v", both)
	}
}

func TestContract_ActiveLookups(t *testing.T) {
	repo := NewContractRepository(openTestDB(t))
	ctx := context.Background()

	unitID := strings.Repeat("1", 32)
	tenantID := strings.Repeat("3", 32)
	active := makeContract(unitID, tenantID, contractDomain.StatusActive)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeContract(unitID, strings.Repeat("4", 32), contractDomain.StatusTerminated)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	onUnit, err := repo.ListActiveByUnit(ctx, unitID)
	if err != nil {
		t.Fatalf("ListActiveByUnit: %v", err)
	}
	if len(onUnit) != 1 || onUnit[0].ContractID != active.ContractID {
		t.Fatalf("active-by-unit wrong: %+v", onUnit)
	}

	got, err := repo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		t.Fatalf("GetActiveByTenant: %v", err)
	}
	if got.ContractID != active.ContractID {
		t.Fatalf("active-by-tenant wrong: %+v", got)
	}

	if _, err := repo.GetActiveByTenant(ctx, strings.Repeat("9", 32)); !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestContract_SaveAndCounts(t *testing.T) {
	repo := NewContractRepository(openTestDB(t))
	ctx := context.Background()

	unitID := strings.Repeat("1", 32)
	tenantID := strings.Repeat("3", 32)
	c := makeContract(unitID, tenantID, contractDomain.StatusActive)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Status = contractDomain.StatusTerminated
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByContractID(ctx, c.ContractID)
	if err != nil {
		t.Fatalf("GetByContractID: %v", err)
	}
	if got.Status != contractDomain.StatusTerminated {
		t.Fatalf("save not persisted: %+v", got)
	}

	n, err := repo.CountByUnit(ctx, unitID)
	if err != nil || n != 1 {
		t.Fatalf("CountByUnit = %d, %v", n, err)
	}
	n, err = repo.CountByTenant(ctx, tenantID)
	if err != nil || n != 1 {
		t.Fatalf("CountByTenant = %d, %v", n, err)
	}
}
