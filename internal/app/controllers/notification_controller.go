package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// NotificationController handles the notification inbox
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Create enqueues a pending notification for a user
// @Summary Create a notification
// @Description Enqueues a pending inbox item; called by the application
// service after a decision
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification details"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification enqueued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /notifications/create_notification [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	notification, err := c.notificationService.Enqueue(ctx.Request.Context(), req.Username, req.Text)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to enqueue notification")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(notification))
}

// Get drains a user's pending notifications
// @Summary Drain pending notifications
// @Description Returns the newline-joined text of the user's pending
// notifications and marks each one completed; a second call returns empty
// @Tags notifications
// @Produce json
// @Param username path string true "Username"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NotificationTextResponse} "Notification text"
// @Router /notifications/get_notifications/{username} [get]
func (c *NotificationController) Get(ctx *gin.Context) {
	username := ctx.Param("username")

	// Users drain their own inbox; admins may drain anyone's.
	if username != middleware.CallerUsername(ctx) && !middleware.CallerHasAuthority(ctx, models.AuthorityAdmin) {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot read another user's notifications"))
		return
	}

	text, err := c.notificationService.Drain(ctx.Request.Context(), username)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("Failed to drain notifications")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.NotificationTextResponse{
		Text: text,
	}))
}
