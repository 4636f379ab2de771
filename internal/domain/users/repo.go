package users

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no user matches the requested id.
var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]User, error)
	All(ctx context.Context) ([]User, error)
}
