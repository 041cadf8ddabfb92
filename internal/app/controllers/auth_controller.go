package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// AuthController handles staff authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a staff account
// @Summary Register a staff account
// @Description Creates a staff account allowed to modify the database
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 8 characters)"
// @Success 200 {object} dto.StatusResponse "Account created"
// @Failure 400 {object} dto.StatusResponse "Validation failed"
// @Failure 409 {object} dto.StatusResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.authService.Register(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Staff account created successfully!"))
}

// Login authenticates a staff account and issues a token
// @Summary Log in
// @Description Verifies staff credentials and returns a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse "Access token"
// @Failure 401 {object} dto.StatusResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	token, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}
