package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpost/inkpost/models"
)

var _ models.PostStore = (*PostRepository)(nil)

// PostRepository is the MySQL-backed implementation of models.PostStore.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a PostRepository.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// GetByPublicID returns the post addressed by its public id.
func (r *PostRepository) GetByPublicID(ctx context.Context, publicID string) (models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("public_id = ?", publicID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Post{}, models.ErrNotFound
		}
		return models.Post{}, fmt.Errorf("failed to get post by public id: %w", err)
	}
	return post, nil
}

// List returns a window of posts ordered newest first, plus the total count.
func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// ListByAuthor returns a window of one author's posts ordered newest first.
func (r *PostRepository) ListByAuthor(ctx context.Context, userID uint, offset, limit int) ([]models.Post, int64, error) {
	q := r.db.WithContext(ctx).Where("created_by = ?", userID)

	var total int64
	if err := q.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts by author: %w", err)
	}

	var posts []models.Post
	err := q.
		Preload("Images", preloadImages).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return posts, total, nil
}

// Create inserts a post together with its images.
func (r *PostRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return models.Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// DeleteByPublicID hard-deletes the post addressed by its public id.
// Attached images are removed by the foreign key cascade.
func (r *PostRepository) DeleteByPublicID(ctx context.Context, publicID string) error {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&models.Post{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
