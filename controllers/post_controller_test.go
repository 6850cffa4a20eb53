package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/inkpost/inkpost/middleware"
	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/services"
)

type stubPostManager struct {
	post models.Post
	page services.Page
	err  error
}

func (s *stubPostManager) Create(context.Context, services.PostInput, uint) (models.Post, error) {
	return s.post, s.err
}

func (s *stubPostManager) List(context.Context, int, int) (services.Page, error) {
	return s.page, s.err
}

func (s *stubPostManager) ListByAuthor(context.Context, uint, int, int) (services.Page, error) {
	return s.page, s.err
}

func (s *stubPostManager) Get(context.Context, string) (models.Post, error) {
	return s.post, s.err
}

func (s *stubPostManager) Delete(context.Context, string, uint) error {
	return s.err
}

func asUser(id uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserIDKey, id)
	}
}

func postRouter(stub *stubPostManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPostController(stub)
	r.GET("/posts", pc.ListPosts)
	r.GET("/posts/:publicId", pc.GetPost)
	r.POST("/posts", asUser(1), pc.CreatePost)
	r.DELETE("/posts/:publicId", asUser(1), pc.DeletePost)
	return r
}

func TestPostController_GetPost_NotFoundMapsTo404(t *testing.T) {
	r := postRouter(&stubPostManager{err: models.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostController_DeletePost_ForbiddenMapsTo403(t *testing.T) {
	r := postRouter(&stubPostManager{err: fmt.Errorf("%w: only the author may delete a post", models.ErrForbidden)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/posts/pid-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPostController_CreatePost_ValidationMapsTo400(t *testing.T) {
	r := postRouter(&stubPostManager{err: fmt.Errorf("%w: title cannot be empty", models.ErrValidation)})

	body := `{"author_name":"Alice","title":"x","content":"y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostController_CreatePost_UnclassifiedMapsTo500(t *testing.T) {
	r := postRouter(&stubPostManager{err: fmt.Errorf("connection reset")})

	body := `{"author_name":"Alice","title":"x","content":"y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal error text must not leak to the client.
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestPostController_GetPost_Success(t *testing.T) {
	r := postRouter(&stubPostManager{post: models.Post{PublicID: "pid-1", Title: "Hello"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/pid-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"public_id":"pid-1"`)
}

func TestPostController_CreatePost_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPostController(&stubPostManager{})
	// No user id in context.
	r.POST("/posts", pc.CreatePost)

	body := `{"author_name":"Alice","title":"x","content":"y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
