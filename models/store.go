package models

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uint) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// PostStore defines persistence operations for posts. List results are
// ordered newest first; implementations return ErrNotFound for absent ids.
type PostStore interface {
	GetByPublicID(ctx context.Context, publicID string) (Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, int64, error)
	ListByAuthor(ctx context.Context, userID uint, offset, limit int) ([]Post, int64, error)
	Create(ctx context.Context, post Post) (Post, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}
