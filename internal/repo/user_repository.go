package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/electronics-store/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// CreateUser returns ErrDuplicatedValueUnique when the username is taken.
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
