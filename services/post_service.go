package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PostInput carries the untrusted fields of a new post.
type PostInput struct {
	AuthorName string
	Title      string
	Content    string
	Images     []ImageInput
}

// ImageInput is one attachment of a new post, in submission order.
type ImageInput struct {
	URL     string
	AltText string
	Caption string
}

// Page is one window of a paginated post listing.
type Page struct {
	Items    []models.Post `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// PostService enforces authoring and ownership rules around posts.
type PostService struct {
	posts  models.PostStore
	logger *zap.SugaredLogger
}

// NewPostService creates a PostService.
func NewPostService(posts models.PostStore, logger *zap.SugaredLogger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

// Create sanitizes the input, derives the slug, mints the public id and
// persists the post under ownerID. Raw untrusted input never reaches storage.
func (s *PostService) Create(ctx context.Context, input PostInput, ownerID uint) (models.Post, error) {
	title := utils.StripTags(strings.TrimSpace(input.Title))
	if title == "" {
		return models.Post{}, fmt.Errorf("%w: title cannot be empty", models.ErrValidation)
	}

	authorName := utils.StripTags(strings.TrimSpace(input.AuthorName))
	if authorName == "" {
		return models.Post{}, fmt.Errorf("%w: author name cannot be empty", models.ErrValidation)
	}

	content := utils.Sanitize(input.Content)
	if strings.TrimSpace(content) == "" {
		return models.Post{}, fmt.Errorf("%w: content cannot be empty", models.ErrValidation)
	}

	images := make([]models.PostImage, 0, len(input.Images))
	for i, img := range input.Images {
		url := strings.TrimSpace(img.URL)
		if url == "" {
			return models.Post{}, fmt.Errorf("%w: image url cannot be empty", models.ErrValidation)
		}
		images = append(images, models.PostImage{
			Position: i,
			URL:      url,
			AltText:  utils.StripTags(img.AltText),
			Caption:  utils.StripTags(img.Caption),
		})
	}

	post := models.Post{
		PublicID:   uuid.NewString(),
		Slug:       slug.Make(strings.ToLower(title)),
		Title:      title,
		AuthorName: authorName,
		Content:    content,
		Images:     images,
		CreatedBy:  ownerID,
		CreatedAt:  time.Now(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return models.Post{}, err
	}

	s.logger.Infow("post created", "public_id", created.PublicID, "user_id", ownerID)
	return created, nil
}

// List returns one page of posts, newest first. Pagination is 1-indexed;
// page values below 1 clamp to 1 and non-positive sizes fall back to the
// default.
func (s *PostService) List(ctx context.Context, page, pageSize int) (Page, error) {
	page, pageSize = clampPagination(page, pageSize)

	items, total, err := s.posts.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListByAuthor returns one page of a single author's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, userID uint, page, pageSize int) (Page, error) {
	page, pageSize = clampPagination(page, pageSize)

	items, total, err := s.posts.ListByAuthor(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get returns the post addressed by its public id.
func (s *PostService) Get(ctx context.Context, publicID string) (models.Post, error) {
	return s.posts.GetByPublicID(ctx, publicID)
}

// Delete removes the post addressed by publicID when requesterID owns it.
// A failed lookup or ownership check leaves the post untouched.
func (s *PostService) Delete(ctx context.Context, publicID string, requesterID uint) error {
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	if post.CreatedBy != requesterID {
		return fmt.Errorf("%w: only the author may delete a post", models.ErrForbidden)
	}

	if err := s.posts.DeleteByPublicID(ctx, publicID); err != nil {
		return err
	}

	s.logger.Infow("post deleted", "public_id", publicID, "user_id", requesterID)
	return nil
}

func clampPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
