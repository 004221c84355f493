package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content. Subject carries the username; the raw
// role tags travel in the token and are mapped to authorities on the
// receiving side.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authorities maps the token's role tags to the fixed authority set.
// Unrecognized tags are dropped.
func (c *Claims) Authorities() []models.Authority {
	return models.AuthoritiesForRoles(c.Roles)
}

// HasAuthority reports whether the claims grant the given authority.
func (c *Claims) HasAuthority(authority models.Authority) bool {
	for _, a := range c.Authorities() {
		if a == authority {
			return true
		}
	}
	return false
}

// GenerateToken creates a signed token for the user. Expiry is fixed at
// issuance time plus the configured lifetime.
func (s *JWTService) GenerateToken(user *models.User) (token string, expiresIn int64, err error) {
	now := time.Now()
	expiry := now.Add(s.config.TokenExp)

	claims := &Claims{
		Username: user.Username,
		Roles:    user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   user.Username,
			ID:        uuid.New().String(),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = jwtToken.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, int64(s.config.TokenExp.Seconds()), nil
}

// ExtractClaims parses and verifies a token and returns its claims.
// Malformed tokens and signature mismatches fail with
// apperrors.ErrAuthenticationFailed; an expired but otherwise well-formed
// token fails with apperrors.ErrTokenExpired.
func (s *JWTService) ExtractClaims(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAuthenticationFailed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAuthenticationFailed, apperrors.ErrTokenInvalid)
	}

	if claims.Username == "" {
		return nil, fmt.Errorf("%w: missing subject", apperrors.ErrAuthenticationFailed)
	}

	return claims, nil
}

// ValidateForUser reports whether the token is currently valid for the
// given username: the subject must match and the expiry must be in the
// future. An expired token or a subject mismatch is an ordinary false;
// signature and format failures abort with an error instead.
func (s *JWTService) ValidateForUser(tokenString, username string) (bool, error) {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenExpired) {
			return false, nil
		}
		return false, err
	}

	return claims.Username == username, nil
}

// ExtractBearerToken extracts the token from the Authorization header. The
// Bearer prefix is optional; peers forward raw tokens verbatim.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
