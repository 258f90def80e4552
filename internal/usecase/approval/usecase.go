package approval

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	domainApproval "rentdesk-backend/internal/domain/approval"
	domainDirectory "rentdesk-backend/internal/domain/directory"
	"rentdesk-backend/pkg/valerr"
)

// Executor replays an approved request's original mutation with elevated
// rights, returning the public id of the entity it produced or touched.
type Executor interface {
	Execute(ctx context.Context, req *domainApproval.Request) (entityID string, err error)
}

type Usecase struct {
	approvals domainApproval.Repository
	users     domainDirectory.Repository
	exec      Executor
}

func NewUsecase(approvals domainApproval.Repository, users domainDirectory.Repository, exec Executor) *Usecase {
	return &Usecase{approvals: approvals, users: users, exec: exec}
}

// RequestDTO annotates a request with requester/approver display names
// resolved against the user directory. Name resolution is best effort and
// never fails the listing.
type RequestDTO struct {
	domainApproval.Request
	RequestedByName string `json:"requested_by_name,omitempty"`
	ApprovedByName  string `json:"approved_by_name,omitempty"`
}

func (u *Usecase) List(ctx context.Context, f domainApproval.ListFilter) ([]RequestDTO, error) {
	reqs, err := u.approvals.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reqs)*2)
	for i := range reqs {
		ids = append(ids, reqs[i].RequestedBy)
		if reqs[i].ApprovedBy != nil {
			ids = append(ids, *reqs[i].ApprovedBy)
		}
	}
	names, err := u.users.GetByUserIDs(ctx, ids)
	if err != nil {
		names = nil
	}

	out := make([]RequestDTO, 0, len(reqs))
	for i := range reqs {
		dto := RequestDTO{Request: reqs[i]}
		if user, ok := names[reqs[i].RequestedBy]; ok {
			dto.RequestedByName = user.Name
		}
		if reqs[i].ApprovedBy != nil {
			if user, ok := names[*reqs[i].ApprovedBy]; ok {
				dto.ApprovedByName = user.Name
			}
		}
		out = append(out, dto)
	}
	return out, nil
}

// UpdateRequestData shallow-merges partial data into the snapshot of a
// still-pending request, so an admin can correct fields before approving.
func (u *Usecase) UpdateRequestData(ctx context.Context, requestID string, partial json.RawMessage) (*domainApproval.Request, error) {
	req, err := u.approvals.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domainApproval.StatusPending {
		return nil, domainApproval.ErrNotPending
	}

	var current, patch map[string]json.RawMessage
	if err := json.Unmarshal(req.RequestData, &current); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(partial, &patch); err != nil {
		return nil, valerr.New("request_data patch must be a JSON object")
	}
	for k, v := range patch {
		current[k] = v
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	req.RequestData = merged
	if err := u.approvals.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Approve replays the snapshotted mutation with admin rights. The request is
// the source of truth until the replay fully succeeds: any replay failure
// leaves it pending with the error surfaced to the admin.
func (u *Usecase) Approve(ctx context.Context, requestID, approverID string) (*domainApproval.Request, error) {
	req, err := u.approvals.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domainApproval.StatusPending {
		return nil, domainApproval.ErrNotPending
	}

	entityID, err := u.exec.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req.Status = domainApproval.StatusApproved
	req.ApprovedBy = &approverID
	req.ApprovedAt = &now
	if entityID != "" {
		req.EntityID = &entityID
	}
	if err := u.approvals.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Reject requires a non-empty reason; the rejecter is recorded in
// approved_by.
func (u *Usecase) Reject(ctx context.Context, requestID, approverID, reason string) (*domainApproval.Request, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainApproval.ErrReasonRequired
	}
	req, err := u.approvals.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domainApproval.StatusPending {
		return nil, domainApproval.ErrNotPending
	}
	req.Status = domainApproval.StatusRejected
	req.RejectionReason = reason
	req.ApprovedBy = &approverID
	if err := u.approvals.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
