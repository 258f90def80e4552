package approval

import "context"

type ListFilter struct {
	Status      Status
	RequestedBy string
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// List returns requests newest first.
	List(ctx context.Context, f ListFilter) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
