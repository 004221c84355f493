package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/auth"
)

// Context keys populated by JWTAuth.
const (
	ContextUsername    = "username"
	ContextAuthorities = "authorities"
	ContextClaims      = "claims"
	ContextToken       = "token"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth middleware for JWT token validation. On success it stores the
// username, authorities and the raw token in the gin context; the raw token
// is what the services forward verbatim on peer calls.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"

			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			} else if errors.Is(err, apperrors.ErrInvalidFormat) {
				errorDetails = "Invalid token format"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextAuthorities, claims.Authorities())
		c.Set(ContextClaims, claims)
		c.Set(ContextToken, authHeader)

		c.Next()
	}
}

// RolesRequired middleware rejects callers holding none of the given
// authorities. Must run after JWTAuth.
func (m *AuthMiddleware) RolesRequired(required ...models.Authority) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextAuthorities)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User authorities not found")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		authorities, ok := value.([]models.Authority)
		if ok {
			for _, have := range authorities {
				for _, want := range required {
					if have == want {
						c.Next()
						return
					}
				}
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// CallerUsername returns the authenticated username set by JWTAuth.
func CallerUsername(c *gin.Context) string {
	return c.GetString(ContextUsername)
}

// CallerToken returns the raw Authorization header value set by JWTAuth,
// for verbatim forwarding to peer services.
func CallerToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}

// CallerHasAuthority reports whether the authenticated caller holds the
// given authority.
func CallerHasAuthority(c *gin.Context, authority models.Authority) bool {
	value, exists := c.Get(ContextAuthorities)
	if !exists {
		return false
	}
	authorities, ok := value.([]models.Authority)
	if !ok {
		return false
	}
	for _, have := range authorities {
		if have == authority {
			return true
		}
	}
	return false
}
