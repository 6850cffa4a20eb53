package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkpost/inkpost/config"
	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/services"
	"github.com/inkpost/inkpost/utils"
)

// PostManager is the slice of the post service the controller depends on.
type PostManager interface {
	Create(ctx context.Context, input services.PostInput, ownerID uint) (models.Post, error)
	List(ctx context.Context, page, pageSize int) (services.Page, error)
	ListByAuthor(ctx context.Context, userID uint, page, pageSize int) (services.Page, error)
	Get(ctx context.Context, publicID string) (models.Post, error)
	Delete(ctx context.Context, publicID string, requesterID uint) error
}

// PostController translates HTTP requests into post service calls.
type PostController struct {
	posts PostManager
}

// NewPostController creates a PostController.
func NewPostController(posts PostManager) *PostController {
	return &PostController{posts: posts}
}

type imageRequest struct {
	URL     string `json:"url" binding:"required"`
	AltText string `json:"alt_text"`
	Caption string `json:"caption"`
}

// CreatePost allows authenticated users to create new posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		AuthorName string         `json:"author_name" binding:"required"`
		Title      string         `json:"title" binding:"required"`
		Content    string         `json:"content" binding:"required"`
		Images     []imageRequest `json:"images"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	input := services.PostInput{
		AuthorName: req.AuthorName,
		Title:      req.Title,
		Content:    req.Content,
	}
	for _, img := range req.Images {
		input.Images = append(input.Images, services.ImageInput{
			URL:     img.URL,
			AltText: img.AltText,
			Caption: img.Caption,
		})
	}

	post, err := p.posts.Create(ctx.Request.Context(), input, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// ListPosts returns paginated posts, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	result, err := p.posts.List(ctx.Request.Context(), page, pageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, result)
}

// ListMyPosts returns posts created by the authenticated user.
func (p *PostController) ListMyPosts(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	result, err := p.posts.ListByAuthor(ctx.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, result)
}

// GetPost returns a single post by its public id.
func (p *PostController) GetPost(ctx *gin.Context) {
	post, err := p.posts.Get(ctx.Request.Context(), ctx.Param("publicId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost allows the author to delete their post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "unauthorized")
		return
	}

	if err := p.posts.Delete(ctx.Request.Context(), ctx.Param("publicId"), userID); err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// UploadImage handles multipart image uploads and returns a public URL that
// can be attached to a post.
func (p *PostController) UploadImage(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40113, "unauthorized")
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "no file uploaded")
		return
	}
	defer file.Close()

	cfg := config.Get()
	maxSize := int64(cfg.UploadMaxMB) * 1024 * 1024
	if header.Size > maxSize {
		utils.Error(ctx, http.StatusBadRequest, 40032, fmt.Sprintf("file size exceeds %dMB", cfg.UploadMaxMB))
		return
	}

	now := time.Now()
	baseDir := filepath.Join(cfg.UploadDir, now.Format("2006"), now.Format("01"), now.Format("02"))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to create upload directory")
		return
	}

	fname := filepath.Base(header.Filename)
	if fname == "." || fname == "" {
		fname = fmt.Sprintf("file_%d", now.UnixNano())
	}
	// Prefix with timestamp and user id to prevent collisions.
	safeName := fmt.Sprintf("%d_%d_%s", now.UnixNano(), userID, fname)
	dstPath := filepath.Join(baseDir, safeName)

	out, err := os.Create(dstPath)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to save file")
		return
	}
	defer out.Close()

	written, err := io.Copy(out, &io.LimitedReader{R: file, N: maxSize + 1})
	if err != nil || written > maxSize {
		_ = out.Close()
		_ = os.Remove(dstPath)
		if written > maxSize {
			utils.Error(ctx, http.StatusBadRequest, 40032, fmt.Sprintf("file size exceeds %dMB", cfg.UploadMaxMB))
		} else {
			utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to write file")
		}
		return
	}

	url := "/" + filepath.ToSlash(dstPath)
	utils.Success(ctx, gin.H{"url": url})
}

func parsePagination(pageStr, sizeStr string) (int, int) {
	page, pageSize := 1, 0
	if p, err := strconv.Atoi(pageStr); err == nil {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil {
		pageSize = s
	}
	return page, pageSize
}
