package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// HandleAPIError maps service-layer errors onto HTTP responses. Services
// return sentinel errors from apperrors; controllers never choose status
// codes themselves.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := ""
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.APIResponse{
			Error:     dto.NewErrorDetail(code, message),
			Timestamp: time.Now(),
		})
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrApplicationNotFound,
		apperrors.ErrContractNotFound,
		apperrors.ErrNotificationNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case apperrors.Is(err, apperrors.ErrTokenInvalid,
		apperrors.ErrAuthenticationFailed,
		apperrors.ErrTokenSubjectMismatch):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Authentication failed")

	case apperrors.Is(err, apperrors.ErrUsernameAlreadyUsed,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")

	case apperrors.Is(err, apperrors.ErrApplicationNotPending,
		apperrors.ErrCourseClosed,
		apperrors.ErrDeadlinePassed,
		apperrors.ErrCourseFullyStaffed):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrUnknownApplicationState,
		apperrors.ErrInvalidRating,
		apperrors.ErrZeroStudentTaRatio):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrRemoteCallFailed):
		respond(http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Dependent service call failed")

	default:
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
