package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
)

// ApplicationController handles the TA application lifecycle
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

func applicationID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Submit files a new TA application for the caller
// @Summary Submit a TA application
// @Description Files a Pending application for the authenticated student
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application details"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	username := middleware.CallerUsername(ctx)

	application, err := c.applicationService.Submit(ctx.Request.Context(), username, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", username).Str("courseCode", req.CourseCode).
			Msg("Failed to submit application")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationID", application.ID).Str("username", username).
		Str("courseCode", req.CourseCode).Msg("Application submitted")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// Get returns a single application
// @Summary Get application by id
// @Tags applications
// @Produce json
// @Param id path int true "Application id"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) Get(ctx *gin.Context) {
	id, ok := applicationID(ctx)
	if !ok {
		return
	}

	application, err := c.applicationService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// List returns applications for a course, optionally filtered by status
// @Summary List applications for a course
// @Tags applications
// @Produce json
// @Param courseCode query string true "Course code"
// @Param status query string false "Status filter (Pending, Accepted, Rejected, Withdrawn)"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	courseCode := ctx.Query("courseCode")
	status := models.ApplicationStatus(ctx.Query("status"))

	applications, err := c.applicationService.ListByCourse(ctx.Request.Context(), courseCode, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// Mine returns the caller's own applications
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Router /applications/mine [get]
func (c *ApplicationController) Mine(ctx *gin.Context) {
	applications, err := c.applicationService.ListByUsername(ctx.Request.Context(), middleware.CallerUsername(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// Decide resolves a pending application
// @Summary Decide on an application
// @Description Accepts or rejects a pending application. On acceptance the
// applicant is granted the ta role, a contract is drafted and the applicant
// is notified, in that order.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application id"
// @Param request body dto.DecideApplicationRequest true "Decision outcome"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application decided"
// @Failure 400 {object} dto.ErrorResponse "Unknown outcome"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application not pending, deadline passed or course fully staffed"
// @Failure 502 {object} dto.ErrorResponse "Dependent service call failed"
// @Router /applications/{id}/decide [put]
func (c *ApplicationController) Decide(ctx *gin.Context) {
	id, ok := applicationID(ctx)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	outcome := models.ApplicationStatus(req.Outcome)

	application, err := c.applicationService.Decide(ctx.Request.Context(), id, outcome, middleware.CallerToken(ctx))
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicationID", id).Str("outcome", req.Outcome).
			Msg("Failed to decide application")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationID", id).Str("outcome", req.Outcome).Msg("Application decided")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// Withdraw retracts the caller's own pending application
// @Summary Withdraw an application
// @Tags applications
// @Produce json
// @Param id path int true "Application id"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application withdrawn"
// @Failure 403 {object} dto.ErrorResponse "Not the applicant"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application not pending"
// @Router /applications/{id}/withdraw [put]
func (c *ApplicationController) Withdraw(ctx *gin.Context) {
	id, ok := applicationID(ctx)
	if !ok {
		return
	}

	application, err := c.applicationService.Withdraw(ctx.Request.Context(), id, middleware.CallerUsername(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
