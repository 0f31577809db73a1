package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobtrack/jobtrack-go/internal/crypto"
	"github.com/jobtrack/jobtrack-go/internal/memstore"
	"github.com/jobtrack/jobtrack-go/internal/model"
)

const testSecret = "test-secret"

func newTestAuthService() *AuthService {
	return NewAuthService(memstore.New().Users(), testSecret, time.Hour)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := newTestAuthService()

	cases := []struct {
		name string
		req  model.SignupRequest
	}{
		{"empty name", model.SignupRequest{Email: "a@x.com", Password: "secret1"}},
		{"empty email", model.SignupRequest{Name: "Ann", Password: "secret1"}},
		{"empty password", model.SignupRequest{Name: "Ann", Email: "a@x.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSignup_ThenLogin(t *testing.T) {
	svc := newTestAuthService()

	signup, err := svc.Signup(context.Background(), model.SignupRequest{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if signup.Token == "" {
		t.Fatal("Signup() returned empty token")
	}
	if signup.User.Name != "Ann" || signup.User.Email != "a@x.com" {
		t.Errorf("Signup() user = %+v", signup.User)
	}

	// The issued token must verify and carry the new user's identity.
	claims, err := crypto.ParseToken(signup.Token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() unexpected error: %v", err)
	}
	if claims.UserID != signup.User.ID {
		t.Errorf("token UserID = %q, want %q", claims.UserID, signup.User.ID)
	}

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if login.User.ID != signup.User.ID {
		t.Errorf("Login() user ID = %q, want %q", login.User.ID, signup.User.ID)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService()

	req := model.SignupRequest{Name: "Ann", Email: "a@x.com", Password: "secret1"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	// Same email, different name/password and different case.
	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Name:     "Other",
		Email:    "A@X.com",
		Password: "different",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Signup(context.Background(), model.SignupRequest{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Signup(context.Background(), model.SignupRequest{
		Name:     "Ann",
		Email:    "Ann@Example.COM",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ann@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.Email != "ann@example.com" {
		t.Errorf("stored email = %q, want normalized form", resp.User.Email)
	}
}

func TestSignup_NeverStoresPlaintext(t *testing.T) {
	store := memstore.New()
	svc := NewAuthService(store.Users(), testSecret, time.Hour)

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	user, err := store.Users().GetByID(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Errorf("password stored improperly: %q", user.PasswordHash)
	}

	match, err := crypto.ComparePassword("secret1", user.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash does not verify: match=%v err=%v", match, err)
	}
}
