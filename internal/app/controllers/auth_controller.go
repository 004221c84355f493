// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
)

// AuthController handles identity and authentication operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new account with the given username, password and roles
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", user.Username).Msg("User registered")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(&dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	}))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokenResponse))
}

// GetUser returns an identity snapshot for a user
// @Summary Get user by username
// @Description Returns the roles and id of a user, without credentials
// @Tags auth
// @Produce json
// @Param username path string true "Username"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User found"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/users/{username} [get]
func (c *AuthController) GetUser(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := c.authService.GetUser(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// GrantTARole adds the ta role to a user. Called by the application service
// when an application is accepted.
// @Summary Grant the TA role
// @Description Adds the ta role to a user's role set; idempotent
// @Tags auth
// @Produce json
// @Param username path string true "Username"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Role granted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/add-role-ta/{username} [put]
func (c *AuthController) GrantTARole(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := c.authService.GrantTARole(ctx.Request.Context(), username); err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("Failed to grant TA role")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", username).Msg("TA role granted")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.SuccessResponse{
		Message: "TA role granted",
	}))
}
