package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

type stubAuthManager struct {
	user  models.User
	token string
	err   error
}

func (s *stubAuthManager) Register(context.Context, string, string, string) (models.User, error) {
	return s.user, s.err
}

func (s *stubAuthManager) Login(context.Context, string, string) (string, error) {
	return s.token, s.err
}

func (s *stubAuthManager) GetUser(context.Context, uint) (models.User, error) {
	return s.user, s.err
}

func authRouter(stub *stubAuthManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := NewAuthController(stub, utils.NewTokenManager("test-secret", time.Hour))
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	return r
}

func TestAuthController_Login_InvalidCredentialsMapsTo401(t *testing.T) {
	r := authRouter(&stubAuthManager{err: models.ErrInvalidCredentials})

	body := `{"username":"alice","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestAuthController_Login_Success(t *testing.T) {
	r := authRouter(&stubAuthManager{token: "signed-token"})

	body := `{"username":"alice","password":"pw"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestAuthController_Register_ShortPasswordRejected(t *testing.T) {
	r := authRouter(&stubAuthManager{})

	body := `{"username":"alice","password":"pw"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Register_DuplicateMapsTo400(t *testing.T) {
	r := authRouter(&stubAuthManager{err: models.ErrValidation})

	body := `{"username":"alice","password":"pw123456","email":"a@x.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
