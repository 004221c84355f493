package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
)

// TaController handles the TA ledger: contracts, reviews and workloads
type TaController struct {
	taService *services.TaService
	logger    zerolog.Logger
}

// NewTaController creates a new TaController
func NewTaController(taService *services.TaService, logger zerolog.Logger) *TaController {
	return &TaController{
		taService: taService,
		logger:    logger,
	}
}

// CreateContract drafts a contract for a newly accepted TA
// @Summary Create a contract
// @Description Persists a Draft contract; called by the application service
// when an application is accepted
// @Tags ta
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Contract details"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Contract} "Contract created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /ta/contracts [post]
func (c *TaController) CreateContract(ctx *gin.Context) {
	var req dto.CreateContractRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	contract, err := c.taService.CreateContract(ctx.Request.Context(), &req, middleware.CallerToken(ctx))
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Str("courseCode", req.CourseCode).
			Msg("Failed to create contract")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", contract.Username).Str("courseCode", contract.CourseCode).
		Msg("Contract created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(contract))
}

// GetContracts returns the caller's contracts
// @Summary List the caller's contracts
// @Tags ta
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Contract} "Contracts"
// @Router /ta/contracts [get]
func (c *TaController) GetContracts(ctx *gin.Context) {
	contracts, err := c.taService.GetContracts(ctx.Request.Context(), middleware.CallerUsername(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(contracts))
}

// SignContract moves the caller's contract for a course to Signed
// @Summary Sign a contract
// @Tags ta
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Contract} "Contract signed"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Router /ta/contracts/{code}/sign [put]
func (c *TaController) SignContract(ctx *gin.Context) {
	username := middleware.CallerUsername(ctx)

	contract, err := c.taService.SignContract(ctx.Request.Context(), username, ctx.Param("code"), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(contract))
}

// CountTAs counts TAs holding a contract for a course
// @Summary Count TAs of a course
// @Tags ta
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=int} "TA count"
// @Router /ta/countTa/{code} [get]
func (c *TaController) CountTAs(ctx *gin.Context) {
	count, err := c.taService.CountTAs(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(count))
}

// CreateReview records a post-hoc review of a TA
// @Summary Review a TA
// @Tags ta
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review details"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Rating out of range"
// @Router /ta/reviews [post]
func (c *TaController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	review, err := c.taService.CreateReview(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(review))
}

// GetReviews lists the reviews written for TAs of a course
// @Summary List reviews for a course
// @Tags ta
// @Produce json
// @Param code query string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Review} "Reviews"
// @Router /ta/reviews [get]
func (c *TaController) GetReviews(ctx *gin.Context) {
	reviews, err := c.taService.GetReviews(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reviews))
}

// DeclareWorkload records hours the caller spent TAing a course
// @Summary Declare worked hours
// @Tags ta
// @Accept json
// @Produce json
// @Param request body dto.DeclareWorkloadRequest true "Workload details"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Workload} "Workload declared"
// @Failure 400 {object} dto.ErrorResponse "Hours must be positive"
// @Router /ta/workloads [post]
func (c *TaController) DeclareWorkload(ctx *gin.Context) {
	var req dto.DeclareWorkloadRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	workload, err := c.taService.DeclareWorkload(ctx.Request.Context(), middleware.CallerUsername(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(workload))
}

// WorkloadHours returns the raw declared hour entries for a course. The
// course service consumes this when computing the average workload.
// @Summary Declared hours for a course
// @Tags ta
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]int} "Hour entries"
// @Router /ta/workload-hours/{code} [get]
func (c *TaController) WorkloadHours(ctx *gin.Context) {
	hours, err := c.taService.WorkloadHours(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hours))
}
