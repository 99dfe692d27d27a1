package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin privileges required")
	ErrUserExists         = errors.New("username already exists")
)

// dummyHash is compared against when the user does not exist so that a
// failed lookup costs the same as a wrong password.
var dummyHash, _ = HashPassword("not-a-real-password")

type Service struct {
	users  repo.UserRepository
	tokens *TokenIssuer
}

func NewService(users repo.UserRepository, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Login checks the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			return "", fmt.Errorf("lookup user: %w", err)
		}
		CheckPassword(dummyHash, password)
		return "", ErrInvalidCredentials
	}
	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Username, user.IsAdmin)
}

// CreateUser registers a non-admin user on behalf of an administrator.
func (s *Service) CreateUser(ctx context.Context, caller *Claims, username, password string) (models.User, error) {
	if caller == nil || !caller.Administrador {
		return models.User{}, ErrForbidden
	}
	return s.create(ctx, username, password, false)
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

// EnsureAdmin creates the bootstrap administrator unless the username is
// already taken. It reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		return false, err
	}
	if _, err := s.create(ctx, username, password, true); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) create(ctx context.Context, username, password string, admin bool) (models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hashed,
		IsAdmin:      admin,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, ErrUserExists
	}
	return user, err
}
