package directory

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDs returns the found subset keyed by user id; missing ids are
	// simply absent (display-name lookup is best effort).
	GetByUserIDs(ctx context.Context, userIDs []string) (map[string]User, error)
}
