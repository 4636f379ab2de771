package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/auth"
	"github.com/swasthyasetu/portal/internal/platform/notify"
)

func newTestService() (*Service, *auth.TokenIssuer, *notify.Feed) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	feed := notify.NewFeed(16)
	return NewService(issuer, feed), issuer, feed
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, issuer, feed := newTestService()
	session, err := svc.Login(context.Background(), LoginInput{
		Name:  "Dr. Rajesh Sharma",
		Email: "rajesh@hospital.com",
		Role:  auth.RoleDoctor,
	})
	if err != nil {
		t.Fatal(err)
	}
	if session.User.Name != "Dr. Rajesh Sharma" || session.User.Role != "doctor" {
		t.Errorf("unexpected user: %+v", session.User)
	}
	if session.User.ID == "" {
		t.Error("expected a generated user id")
	}

	claims, err := issuer.Parse(session.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Name != "Dr. Rajesh Sharma" || claims.Role != "doctor" {
		t.Errorf("token claims do not match session: %+v", claims)
	}
	if feed.Len() != 1 {
		t.Errorf("expected a welcome toast, got %d events", feed.Len())
	}
}

func TestLoginDefaultsNameFromEmail(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.Login(context.Background(), LoginInput{
		Email: "priya.patel@email.com",
		Role:  auth.RolePatient,
	})
	if err != nil {
		t.Fatal(err)
	}
	if session.User.Name != "priya.patel" {
		t.Errorf("expected name from email local part, got %q", session.User.Name)
	}
}

func TestLoginValidation(t *testing.T) {
	svc, _, feed := newTestService()

	if _, err := svc.Login(context.Background(), LoginInput{Role: auth.RoleAdmin}); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "x@y.com", Role: "superuser"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if feed.Len() != 0 {
		t.Errorf("failed logins must not toast, got %d events", feed.Len())
	}
}

func TestMeFromContext(t *testing.T) {
	svc, _, _ := newTestService()

	ctx := context.WithValue(context.Background(), auth.UserIDKey, "u-42")
	ctx = context.WithValue(ctx, auth.UserNameKey, "Admin Kumar")
	ctx = context.WithValue(ctx, auth.UserRoleKey, auth.RoleAdmin)

	user, err := svc.Me(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "u-42" || user.Name != "Admin Kumar" || user.Role != "admin" {
		t.Errorf("unexpected identity: %+v", user)
	}

	if _, err := svc.Me(context.Background()); err == nil {
		t.Fatal("expected error for anonymous context")
	}
}

func TestLogoutToasts(t *testing.T) {
	svc, _, feed := newTestService()
	ctx := context.WithValue(context.Background(), auth.UserNameKey, "Priya Patel")
	svc.Logout(ctx)
	if feed.Len() != 1 {
		t.Fatalf("expected 1 toast, got %d", feed.Len())
	}
	events := feed.Recent(1)
	if events[0].Message != "Goodbye, Priya Patel. You have been logged out." {
		t.Errorf("unexpected message: %s", events[0].Message)
	}
}
