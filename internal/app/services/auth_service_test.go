package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	pkgAuth "github.com/victoriayuechen/tarecruit/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return apperrors.ErrUsernameAlreadyUsed
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.Username] = &clone
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) AddRole(_ context.Context, username, role string) error {
	user, ok := f.users[username]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for _, r := range user.Roles {
		if r == role {
			return nil
		}
	}
	user.Roles = append(user.Roles, role)
	return nil
}

func newTestAuthService(store *fakeUserStore) *AuthService {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tarecruit.test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop())
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	service := newTestAuthService(store)
	ctx := context.Background()

	user, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Password: "hunter2hunter2",
		Roles:    []string{"student"},
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.Password == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}

	token, err := service.Login(ctx, &dto.LoginRequest{Username: "jdoe", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token.AccessToken == "" || token.TokenType != "Bearer" {
		t.Errorf("token = %+v, want non-empty Bearer token", token)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := newTestAuthService(newFakeUserStore())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{name: "username too short", req: dto.RegisterRequest{Username: "jd", Password: "hunter2hunter2", Roles: []string{"student"}}},
		{name: "username uppercase", req: dto.RegisterRequest{Username: "JDoe", Password: "hunter2hunter2", Roles: []string{"student"}}},
		{name: "password too short", req: dto.RegisterRequest{Username: "jdoe", Password: "short", Roles: []string{"student"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("Register() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := newTestAuthService(newFakeUserStore())
	ctx := context.Background()

	req := &dto.RegisterRequest{Username: "jdoe", Password: "hunter2hunter2", Roles: []string{"student"}}
	if _, err := service.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if _, err := service.Register(ctx, req); !errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
		t.Errorf("second Register() error = %v, want ErrUsernameAlreadyUsed", err)
	}
}

// Unknown usernames and wrong passwords come back as the same error, so a
// caller cannot probe which usernames exist.
func TestLoginInvalidCredentials(t *testing.T) {
	service := newTestAuthService(newFakeUserStore())
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe", Password: "hunter2hunter2", Roles: []string{"student"},
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "jdoe", password: "wrong-password"},
		{name: "unknown user", username: "nobody", password: "hunter2hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestGrantTARoleIdempotent(t *testing.T) {
	store := newFakeUserStore()
	service := newTestAuthService(store)
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe", Password: "hunter2hunter2", Roles: []string{"student"},
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if err := service.GrantTARole(ctx, "jdoe"); err != nil {
		t.Fatalf("GrantTARole() error: %v", err)
	}
	if err := service.GrantTARole(ctx, "jdoe"); err != nil {
		t.Fatalf("second GrantTARole() error: %v", err)
	}

	user, err := service.GetUser(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetUser() error: %v", err)
	}
	taCount := 0
	for _, role := range user.Roles {
		if role == "ta" {
			taCount++
		}
	}
	if taCount != 1 {
		t.Errorf("ta role appears %d times, want exactly 1 (roles: %v)", taCount, user.Roles)
	}
}

func TestGrantTARoleUnknownUser(t *testing.T) {
	service := newTestAuthService(newFakeUserStore())

	if err := service.GrantTARole(context.Background(), "nobody"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("GrantTARole() error = %v, want ErrUserNotFound", err)
	}
}
