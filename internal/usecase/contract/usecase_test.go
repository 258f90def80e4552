package contract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	domainBilling "rentdesk-backend/internal/domain/billing"
	domainContract "rentdesk-backend/internal/domain/contract"
	domainProperty "rentdesk-backend/internal/domain/property"
	domainTenant "rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/internal/domain/uow"
	"rentdesk-backend/internal/testutil/approvalmock"
	"rentdesk-backend/internal/testutil/billingmock"
	"rentdesk-backend/internal/testutil/contractmock"
	"rentdesk-backend/internal/testutil/propertymock"
	"rentdesk-backend/internal/testutil/tenantmock"
	"rentdesk-backend/internal/testutil/uowmock"
	"rentdesk-backend/pkg/dateonly"
)

var (
	admin = auth.Actor{ID: strings.Repeat("a", 32), Role: auth.RoleAdmin}
	staff = auth.Actor{ID: strings.Repeat("b", 32), Role: auth.RoleStaff}

	tenantID = strings.Repeat("1", 32)
	unitID   = strings.Repeat("2", 32)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	contracts *contractmock.Repo
	units     *propertymock.UnitRepo
	tenants   *tenantmock.Repo
	invoices  *billingmock.InvoiceRepo
	approvals *approvalmock.Repo
	uc        *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		contracts: &contractmock.Repo{},
		units: &propertymock.UnitRepo{
			GetByUnitIDFn: func(ctx context.Context, id string) (*domainProperty.Unit, error) {
				return &domainProperty.Unit{UnitID: id, Type: domainProperty.Unit1BR}, nil
			},
		},
		tenants: &tenantmock.Repo{
			GetByTenantIDFn: func(ctx context.Context, id string) (*domainTenant.Tenant, error) {
				return &domainTenant.Tenant{TenantID: id, Name: "T"}, nil
			},
		},
		invoices:  &billingmock.InvoiceRepo{},
		approvals: &approvalmock.Repo{},
	}
	repos := uow.Repos{
		Units:     f.units,
		Tenants:   f.tenants,
		Contracts: f.contracts,
		Invoices:  f.invoices,
		Approvals: f.approvals,
	}
	f.uc = NewUsecase(f.contracts, f.units, f.tenants, f.invoices, f.approvals, uowmock.Passthrough(repos))
	return f
}

func validInput() CreateContractInput {
	return CreateContractInput{
		TenantID:         tenantID,
		UnitID:           unitID,
		StartDate:        dateonly.Of(date(2026, 1, 1)),
		EndDate:          dateonly.Of(date(2027, 1, 1)),
		MonthlyRent:      1200,
		PaymentFrequency: domainContract.Freq2Payment,
		Status:           domainContract.StatusActive,
	}
}

func TestCreate_AdminActiveGeneratesSchedule(t *testing.T) {
	f := newFixture()

	var created *domainContract.Contract
	f.contracts.CreateFn = func(ctx context.Context, c *domainContract.Contract) error {
		created = c
		return nil
	}
	var savedUnit *domainProperty.Unit
	f.units.SaveFn = func(ctx context.Context, u *domainProperty.Unit) error {
		savedUnit = u
		return nil
	}
	var batch []*domainBilling.Invoice
	f.invoices.CreateBatchFn = func(ctx context.Context, invs []*domainBilling.Invoice) error {
		batch = invs
		return nil
	}

	res, err := f.uc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if res.RequiresApproval {
		t.Fatalf("admin create must be direct")
	}
	if created == nil || created.Status != domainContract.StatusActive {
		t.Fatalf("contract not persisted active: %+v", created)
	}
	if created.NumberOfInstallments != 2 {
		t.Fatalf("installment count = %d, want 2", created.NumberOfInstallments)
	}
	if savedUnit == nil || !savedUnit.IsOccupied {
		t.Fatalf("unit not marked occupied")
	}
	if len(batch) != 2 || batch[0].Amount != 7200 || batch[1].Amount != 7200 {
		t.Fatalf("unexpected schedule: %+v", batch)
	}
}

func TestCreate_DraftSkipsActivation(t *testing.T) {
	f := newFixture()
	f.invoices.CreateBatchFn = func(ctx context.Context, invs []*domainBilling.Invoice) error {
		t.Fatalf("draft create must not generate invoices")
		return nil
	}
	in := validInput()
	in.Status = domainContract.StatusDraft

	res, err := f.uc.Create(context.Background(), in, admin)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if res.Contract.Status != domainContract.StatusDraft {
		t.Fatalf("status = %s, want draft", res.Contract.Status)
	}
}

func TestCreate_StaffGetsPendingRequest(t *testing.T) {
	f := newFixture()
	f.contracts.CreateFn = func(ctx context.Context, c *domainContract.Contract) error {
		t.Fatalf("staff create must not write a contract row")
		return nil
	}
	var req *domainApproval.Request
	f.approvals.CreateFn = func(ctx context.Context, r *domainApproval.Request) error {
		req = r
		return nil
	}

	res, err := f.uc.Create(context.Background(), validInput(), staff)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if !res.RequiresApproval || res.RequestID == "" {
		t.Fatalf("staff create must defer: %+v", res)
	}
	if req == nil || req.RequestType != domainApproval.TypeContractCreate {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !strings.Contains(string(req.RequestData), `"start_date":"2026-01-01"`) {
		t.Fatalf("snapshot must store dates in calendar form: %s", req.RequestData)
	}
}

func TestCreate_RejectsUnitOverlap(t *testing.T) {
	f := newFixture()
	f.contracts.ListActiveByUnitFn = func(ctx context.Context, id string) ([]domainContract.Contract, error) {
		return []domainContract.Contract{{
			ContractID: strings.Repeat("9", 32),
			UnitID:     id,
			StartDate:  date(2026, 6, 1),
			EndDate:    date(2026, 12, 1),
			Status:     domainContract.StatusActive,
		}}, nil
	}

	_, err := f.uc.Create(context.Background(), validInput(), admin)
	if !errors.Is(err, domainContract.ErrUnitOverlap) {
		t.Fatalf("want ErrUnitOverlap, got %v", err)
	}
}

func TestCreate_RejectsSecondActiveForTenant(t *testing.T) {
	f := newFixture()
	f.contracts.GetActiveByTenantFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
		return &domainContract.Contract{ContractID: strings.Repeat("9", 32), TenantID: id}, nil
	}

	_, err := f.uc.Create(context.Background(), validInput(), admin)
	if !errors.Is(err, domainContract.ErrTenantActiveExists) {
		t.Fatalf("want ErrTenantActiveExists, got %v", err)
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	f := newFixture()

	in := validInput()
	in.MonthlyRent = 0
	if _, err := f.uc.Create(context.Background(), in, admin); err == nil {
		t.Fatalf("zero rent must fail")
	}

	in = validInput()
	in.EndDate = dateonly.Of(in.StartDate.AddDate(0, -1, 0))
	if _, err := f.uc.Create(context.Background(), in, admin); err == nil {
		t.Fatalf("end before start must fail")
	}

	in = validInput()
	in.PaymentFrequency = "weekly"
	if _, err := f.uc.Create(context.Background(), in, admin); err == nil {
		t.Fatalf("bad frequency must fail")
	}
}

func TestUpdate_ActiveFieldsImmutable(t *testing.T) {
	f := newFixture()
	f.contracts.GetByContractIDFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
		return &domainContract.Contract{ContractID: id, Status: domainContract.StatusActive}, nil
	}

	rent := 999.0
	_, err := f.uc.Update(context.Background(), strings.Repeat("c", 32), UpdateContractInput{MonthlyRent: &rent}, admin)
	if !errors.Is(err, domainContract.ErrActiveImmutable) {
		t.Fatalf("want ErrActiveImmutable, got %v", err)
	}
}

func TestUpdate_TerminalStatesAreFrozen(t *testing.T) {
	f := newFixture()
	for _, status := range []domainContract.Status{domainContract.StatusExpired, domainContract.StatusTerminated} {
		f.contracts.GetByContractIDFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
			return &domainContract.Contract{ContractID: id, Status: status}, nil
		}
		notes := []string{"x"}
		_, err := f.uc.Update(context.Background(), strings.Repeat("c", 32), UpdateContractInput{Attachments: &notes}, admin)
		if !errors.Is(err, domainContract.ErrInvalidTransition) {
			t.Fatalf("%s: want ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestUpdate_StaffCannotActivate(t *testing.T) {
	f := newFixture()
	f.contracts.GetByContractIDFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
		return &domainContract.Contract{
			ContractID:       id,
			TenantID:         tenantID,
			UnitID:           unitID,
			StartDate:        date(2026, 1, 1),
			EndDate:          date(2027, 1, 1),
			MonthlyRent:      1000,
			PaymentFrequency: domainContract.FreqMonthly,
			Status:           domainContract.StatusDraft,
		}, nil
	}

	active := domainContract.StatusActive
	_, err := f.uc.Update(context.Background(), strings.Repeat("c", 32), UpdateContractInput{Status: &active}, staff)
	if !errors.Is(err, domainContract.ErrForbiddenTransition) {
		t.Fatalf("want ErrForbiddenTransition, got %v", err)
	}
}

func TestUpdate_AdminActivatesDraft(t *testing.T) {
	f := newFixture()
	f.contracts.GetByContractIDFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
		return &domainContract.Contract{
			ContractID:       id,
			TenantID:         tenantID,
			UnitID:           unitID,
			StartDate:        date(2026, 1, 1),
			EndDate:          date(2026, 7, 1),
			MonthlyRent:      1000,
			PaymentFrequency: domainContract.FreqMonthly,
			Status:           domainContract.StatusDraft,
		}, nil
	}
	var batch []*domainBilling.Invoice
	f.invoices.CreateBatchFn = func(ctx context.Context, invs []*domainBilling.Invoice) error {
		batch = invs
		return nil
	}
	f.units.SaveFn = func(ctx context.Context, u *domainProperty.Unit) error { return nil }

	active := domainContract.StatusActive
	res, err := f.uc.Update(context.Background(), strings.Repeat("c", 32), UpdateContractInput{Status: &active}, admin)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if res.Contract.Status != domainContract.StatusActive {
		t.Fatalf("status = %s, want active", res.Contract.Status)
	}
	if len(batch) != 6 {
		t.Fatalf("schedule length = %d, want 6", len(batch))
	}
}

func TestTerminate_AdminCascade(t *testing.T) {
	f := newFixture()
	contractID := strings.Repeat("c", 32)

	f.contracts.GetByContractIDForUpdateFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
		return &domainContract.Contract{ContractID: id, UnitID: unitID, Status: domainContract.StatusActive}, nil
	}
	var savedContract *domainContract.Contract
	f.contracts.SaveFn = func(ctx context.Context, c *domainContract.Contract) error {
		savedContract = c
		return nil
	}
	f.units.GetByUnitIDFn = func(ctx context.Context, id string) (*domainProperty.Unit, error) {
		return &domainProperty.Unit{UnitID: id, IsOccupied: true}, nil
	}
	var savedUnit *domainProperty.Unit
	f.units.SaveFn = func(ctx context.Context, u *domainProperty.Unit) error {
		savedUnit = u
		return nil
	}
	f.invoices.CancelOpenByContractFn = func(ctx context.Context, id string) (int64, error) {
		return 3, nil
	}

	res, err := f.uc.Terminate(context.Background(), contractID, admin)
	if err != nil {
		t.Fatalf("Terminate err: %v", err)
	}
	if savedContract == nil || savedContract.Status != domainContract.StatusTerminated {
		t.Fatalf("contract not terminated: %+v", savedContract)
	}
	if savedUnit == nil || savedUnit.IsOccupied {
		t.Fatalf("unit not vacated: %+v", savedUnit)
	}
	if res.CancelledInvoices != 3 {
		t.Fatalf("cancelled = %d, want 3", res.CancelledInvoices)
	}
}

func TestTerminate_OnlyActiveContracts(t *testing.T) {
	f := newFixture()
	for _, status := range []domainContract.Status{domainContract.StatusDraft, domainContract.StatusTerminated, domainContract.StatusExpired} {
		f.contracts.GetByContractIDForUpdateFn = func(ctx context.Context, id string) (*domainContract.Contract, error) {
			return &domainContract.Contract{ContractID: id, UnitID: unitID, Status: status}, nil
		}
		_, err := f.uc.Terminate(context.Background(), strings.Repeat("c", 32), admin)
		if !errors.Is(err, domainContract.ErrInvalidTransition) {
			t.Fatalf("%s: want ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestTerminate_StaffGetsPendingRequest(t *testing.T) {
	f := newFixture()
	var req *domainApproval.Request
	f.approvals.CreateFn = func(ctx context.Context, r *domainApproval.Request) error {
		req = r
		return nil
	}

	res, err := f.uc.Terminate(context.Background(), strings.Repeat("c", 32), staff)
	if err != nil {
		t.Fatalf("Terminate err: %v", err)
	}
	if !res.RequiresApproval {
		t.Fatalf("staff terminate must defer")
	}
	if req == nil || req.RequestType != domainApproval.TypeContractTerminate {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !strings.Contains(string(req.RequestData), strings.Repeat("c", 32)) {
		t.Fatalf("snapshot missing contract id: %s", req.RequestData)
	}
}

func TestActivate_IdempotentGeneration(t *testing.T) {
	f := newFixture()
	f.invoices.CountByContractFn = func(ctx context.Context, id string) (int64, error) { return 12, nil }
	f.invoices.CreateBatchFn = func(ctx context.Context, invs []*domainBilling.Invoice) error {
		t.Fatalf("schedule must not be regenerated when invoices exist")
		return nil
	}
	f.units.SaveFn = func(ctx context.Context, u *domainProperty.Unit) error { return nil }

	if _, err := f.uc.Create(context.Background(), validInput(), admin); err != nil {
		t.Fatalf("Create err: %v", err)
	}
}
