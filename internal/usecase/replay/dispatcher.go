// Package replay maps approved request types back onto the usecases that
// would have executed them directly, with the actor's role elevated so the
// mutation proceeds instead of re-deferring.
package replay

import (
	"context"
	"encoding/json"
	"fmt"

	domainApproval "rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/auth"
	billinguc "rentdesk-backend/internal/usecase/billing"
	contractuc "rentdesk-backend/internal/usecase/contract"
	tenantuc "rentdesk-backend/internal/usecase/tenant"
	"rentdesk-backend/pkg/valerr"
)

type Dispatcher struct {
	Tenants   *tenantuc.Usecase
	Contracts *contractuc.Usecase
	Billing   *billinguc.Usecase
}

func NewDispatcher(tenants *tenantuc.Usecase, contracts *contractuc.Usecase, billing *billinguc.Usecase) *Dispatcher {
	return &Dispatcher{Tenants: tenants, Contracts: contracts, Billing: billing}
}

// Execute re-runs the snapshotted mutation. Every precondition is
// re-validated at approval time; if the world changed since the request was
// filed (say an earlier installment was unpaid again), the replay fails and
// the request stays pending.
func (d *Dispatcher) Execute(ctx context.Context, req *domainApproval.Request) (string, error) {
	actor := auth.Actor{ID: req.RequestedBy}.Elevated()

	switch req.RequestType {
	case domainApproval.TypeTenantCreate:
		var in tenantuc.CreateTenantInput
		if err := json.Unmarshal(req.RequestData, &in); err != nil {
			return "", valerr.New(fmt.Sprintf("decode %s snapshot: %v", req.RequestType, err))
		}
		res, err := d.Tenants.Create(ctx, in, actor)
		if err != nil {
			return "", err
		}
		return res.Tenant.TenantID, nil

	case domainApproval.TypeContractCreate:
		var in contractuc.CreateContractInput
		if err := json.Unmarshal(req.RequestData, &in); err != nil {
			return "", valerr.New(fmt.Sprintf("decode %s snapshot: %v", req.RequestType, err))
		}
		res, err := d.Contracts.Create(ctx, in, actor)
		if err != nil {
			return "", err
		}
		return res.Contract.ContractID, nil

	case domainApproval.TypeContractTerminate:
		var in struct {
			ContractID string `json:"contract_id"`
		}
		if err := json.Unmarshal(req.RequestData, &in); err != nil {
			return "", valerr.New(fmt.Sprintf("decode %s snapshot: %v", req.RequestType, err))
		}
		if _, err := d.Contracts.Terminate(ctx, in.ContractID, actor); err != nil {
			return "", err
		}
		return in.ContractID, nil

	case domainApproval.TypePaymentCreate:
		var in billinguc.CreatePaymentInput
		if err := json.Unmarshal(req.RequestData, &in); err != nil {
			return "", valerr.New(fmt.Sprintf("decode %s snapshot: %v", req.RequestType, err))
		}
		res, err := d.Billing.CreatePayment(ctx, in, actor)
		if err != nil {
			return "", err
		}
		return res.Payment.PaymentID, nil

	case domainApproval.TypePaymentDelete:
		var in struct {
			PaymentID string `json:"payment_id"`
		}
		if err := json.Unmarshal(req.RequestData, &in); err != nil {
			return "", valerr.New(fmt.Sprintf("decode %s snapshot: %v", req.RequestType, err))
		}
		if _, err := d.Billing.DeletePayment(ctx, in.PaymentID, actor); err != nil {
			return "", err
		}
		return in.PaymentID, nil
	}
	return "", domainApproval.ErrUnknownType
}
