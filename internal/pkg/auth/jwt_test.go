package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "tarecruit.test",
	})
}

func TestGenerateAndExtractClaims(t *testing.T) {
	service := newTestService(10 * time.Hour)
	user := &models.User{Username: "jdoe", Roles: []string{"student", "ta"}}

	token, expiresIn, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if expiresIn != int64((10 * time.Hour).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int64((10*time.Hour).Seconds()))
	}

	claims, err := service.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims() error: %v", err)
	}
	if claims.Username != "jdoe" {
		t.Errorf("username = %q, want jdoe", claims.Username)
	}
	if claims.Subject != "jdoe" {
		t.Errorf("subject = %q, want jdoe", claims.Subject)
	}
	if claims.ID == "" {
		t.Error("token ID is empty")
	}
	if !claims.HasAuthority(models.AuthorityStudent) || !claims.HasAuthority(models.AuthorityTA) {
		t.Errorf("authorities = %v, want student and ta", claims.Authorities())
	}
	if claims.HasAuthority(models.AuthorityAdmin) {
		t.Error("claims unexpectedly grant admin")
	}
}

func TestExtractClaimsExpired(t *testing.T) {
	service := newTestService(-time.Minute)
	token, _, err := service.GenerateToken(&models.User{Username: "jdoe", Roles: []string{"student"}})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	_, err = service.ExtractClaims(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ExtractClaims() error = %v, want ErrTokenExpired", err)
	}
}

func TestExtractClaimsFailures(t *testing.T) {
	service := newTestService(time.Hour)

	otherService := NewJWTService(JWTConfig{
		SecretKey:   "other-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tarecruit.test",
	})
	foreign, _, err := otherService.GenerateToken(&models.User{Username: "jdoe", Roles: []string{"student"}})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong signature", token: foreign},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ExtractClaims(tt.token)
			if !errors.Is(err, apperrors.ErrAuthenticationFailed) {
				t.Errorf("ExtractClaims() error = %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}

func TestValidateForUser(t *testing.T) {
	service := newTestService(time.Hour)
	token, _, err := service.GenerateToken(&models.User{Username: "jdoe", Roles: []string{"student"}})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	valid, err := service.ValidateForUser(token, "jdoe")
	if err != nil || !valid {
		t.Errorf("ValidateForUser(own token) = %v, %v, want true, nil", valid, err)
	}

	// Subject mismatch is an ordinary false, not an error.
	valid, err = service.ValidateForUser(token, "other")
	if err != nil {
		t.Fatalf("ValidateForUser(mismatched user) error: %v", err)
	}
	if valid {
		t.Error("ValidateForUser(mismatched user) = true, want false")
	}
}

func TestValidateForUserExpired(t *testing.T) {
	service := newTestService(-time.Minute)
	token, _, err := service.GenerateToken(&models.User{Username: "jdoe", Roles: []string{"student"}})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	// Expiry is an ordinary false; only structural failures are errors.
	valid, err := service.ValidateForUser(token, "jdoe")
	if err != nil {
		t.Fatalf("ValidateForUser(expired token) error: %v", err)
	}
	if valid {
		t.Error("ValidateForUser(expired token) = true, want false")
	}
}

func TestValidateForUserMalformed(t *testing.T) {
	service := newTestService(time.Hour)

	valid, err := service.ValidateForUser("garbage", "jdoe")
	if err == nil {
		t.Error("ValidateForUser(malformed token) expected an error")
	}
	if valid {
		t.Error("ValidateForUser(malformed token) = true, want false")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "with prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("ExtractBearerToken() expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
