package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
)

// CourseController handles course directory operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse registers a new course
// @Summary Create a course
// @Description Creates a course entry that students can apply to TA for
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("courseCode", req.Code).Msg("Failed to create course")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseCode", course.Code).Msg("Course created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetCourse returns a single course
// @Summary Get course by code
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course found"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ListCourses lists courses, optionally filtered
// @Summary List courses
// @Description Lists courses, optionally filtered by quarter and open status
// @Tags courses
// @Produce json
// @Param quarter query string false "Quarter filter, e.g. 2026.1"
// @Param open query bool false "Only courses open for applications"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	quarter := ctx.Query("quarter")
	openOnly := ctx.Query("open") == "true"

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), quarter, openOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// UpdateCourse updates mutable course fields
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// IncrementTAs bumps the course's TA headcount
// @Summary Increment a course's TA count
// @Description Adds one to numberOfTas; called by the TA ledger when a
// contract is persisted
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code}/increment-tas [put]
func (c *CourseController) IncrementTAs(ctx *gin.Context) {
	code := ctx.Param("code")

	course, err := c.courseService.IncrementTAs(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseCode", code).Int("numberOfTas", course.NumberOfTas).Msg("Course TA count incremented")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// AverageWorkload computes the average declared TA hours for a course
// @Summary Average declared workload for a course
// @Description Fetches declared hours from the TA ledger, averages them with
// integer truncation and caches the result on the course record
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AverageWorkloadResponse} "Average hours"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 502 {object} dto.ErrorResponse "TA ledger unreachable"
// @Router /courses/course/averageWorkload/{code} [get]
func (c *CourseController) AverageWorkload(ctx *gin.Context) {
	code := ctx.Param("code")

	average, err := c.courseService.AverageWorkload(ctx.Request.Context(), code, middleware.CallerToken(ctx))
	if err != nil {
		c.logger.Warn().Err(err).Str("courseCode", code).Msg("Failed to compute average workload")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.AverageWorkloadResponse{
		AverageHours: average,
	}))
}
