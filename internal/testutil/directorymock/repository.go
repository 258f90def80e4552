package directorymock

import (
	"context"

	domain "rentdesk-backend/internal/domain/directory"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, u *domain.User) error
	GetByUserIDFn  func(ctx context.Context, userID string) (*domain.User, error)
	GetByUserIDsFn func(ctx context.Context, userIDs []string) (map[string]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	if m.GetByUserIDsFn != nil {
		return m.GetByUserIDsFn(ctx, userIDs)
	}
	return map[string]domain.User{}, nil
}
