package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

// AuthService is the sole authority on credential correctness. The bcrypt
// cost and token manager are fixed at construction; plaintext passwords are
// never stored or logged.
type AuthService struct {
	users      models.UserStore
	tokens     *utils.TokenManager
	bcryptCost int
	logger     *zap.SugaredLogger
}

// NewAuthService creates an AuthService.
func NewAuthService(users models.UserStore, tokens *utils.TokenManager, bcryptCost int, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username cannot be empty", models.ErrValidation)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: password cannot be empty", models.ErrValidation)
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return models.User{}, fmt.Errorf("%w: username already taken", models.ErrValidation)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, models.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller so usernames cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", user.ID, "username", user.Username)
	return token, nil
}

// GetUser returns the user with the given id.
func (s *AuthService) GetUser(ctx context.Context, id uint) (models.User, error) {
	return s.users.GetByID(ctx, id)
}
