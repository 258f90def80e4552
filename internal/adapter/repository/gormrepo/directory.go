package gormrepo

import (
	"context"
	"errors"

	directoryDomain "rentdesk-backend/internal/domain/directory"

	"gorm.io/gorm"
)

type DirectoryRepository struct{ db *gorm.DB }

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository { return &DirectoryRepository{db: db} }

func (r *DirectoryRepository) Create(ctx context.Context, u *directoryDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *DirectoryRepository) GetByUserID(ctx context.Context, userID string) (*directoryDomain.User, error) {
	var out directoryDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, directoryDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DirectoryRepository) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]directoryDomain.User, error) {
	out := make(map[string]directoryDomain.User, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var rows []directoryDomain.User
	res := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for _, u := range rows {
		out[u.UserID] = u
	}
	return out, nil
}
