package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/swasthyasetu/portal/internal/platform/auth"
	"github.com/swasthyasetu/portal/internal/platform/notify"
)

var (
	// ErrMissingEmail is returned when the sign-in form has no email.
	ErrMissingEmail = errors.New("email is required")
	// ErrInvalidRole is returned when the requested role is not one of
	// doctor, patient, or admin.
	ErrInvalidRole = errors.New("invalid role")
)

type Service struct {
	issuer *auth.TokenIssuer
	feed   *notify.Feed
}

func NewService(issuer *auth.TokenIssuer, feed *notify.Feed) *Service {
	return &Service{issuer: issuer, feed: feed}
}

// Login fabricates a user for the chosen role and issues their token.
// There is no credential store; any email signs in, the way a demo
// deployment expects.
func (s *Service) Login(_ context.Context, in LoginInput) (*Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if !auth.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, in.Role)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   in.Role,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
	}
	token, err := s.issuer.Issue(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	s.feed.Success(fmt.Sprintf("Welcome back, %s!", user.Name))
	return &Session{User: user, Token: token}, nil
}

// Logout acknowledges the sign-out. Tokens are stateless, so there is
// nothing to revoke server-side.
func (s *Service) Logout(ctx context.Context) {
	name := auth.UserNameFromContext(ctx)
	if name == "" {
		name = "user"
	}
	s.feed.Info(fmt.Sprintf("Goodbye, %s. You have been logged out.", name))
}

// Me reconstructs the session identity from the request context.
func (s *Service) Me(ctx context.Context) (*User, error) {
	id := auth.UserIDFromContext(ctx)
	if id == "" {
		return nil, errors.New("no authenticated user")
	}
	name := auth.UserNameFromContext(ctx)
	return &User{
		ID:     id,
		Name:   name,
		Role:   auth.RoleFromContext(ctx),
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + name,
	}, nil
}
