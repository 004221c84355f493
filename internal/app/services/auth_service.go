package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	pkgAuth "github.com/victoriayuechen/tarecruit/internal/pkg/auth"
	"github.com/victoriayuechen/tarecruit/internal/pkg/validation"
)

// AuthService handles identity operations: registration, login and role
// grants.
type AuthService struct {
	userRepo   UserStore
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserStore, jwtService *pkgAuth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new identity with a hashed password. Role tags are
// stored as given; unknown tags carry no authority but are not rejected.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if !validation.ValidUsername(req.Username) {
		return nil, fmt.Errorf("%w: username must be 3-32 lowercase characters", apperrors.ErrValidationFailed)
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	hashed, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Roles:    req.Roles,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Strs("roles", user.Roles).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			// Do not reveal whether the username exists
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgAuth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// GetUser returns an identity snapshot without credentials.
func (s *AuthService) GetUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	}, nil
}

// GrantTARole adds the ta role to an identity. Granting an already-held
// role is a no-op.
func (s *AuthService) GrantTARole(ctx context.Context, username string) error {
	if err := s.userRepo.AddRole(ctx, username, "ta"); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("TA role granted")
	return nil
}
