// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it free of any concrete database driver.
package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user does not exist in the store.
var ErrUserNotFound = errors.New("user not found")

// UserRepository manages marketplace accounts keyed by the
// identity-provider-issued user ID.
type UserRepository interface {
	// FindUserByID retrieves a user by the provider-issued ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// UpsertUser creates the user on first sight or refreshes the profile
	// fields on subsequent calls. The ID is never changed.
	UpsertUser(ctx context.Context, user *entity.User) error
}
