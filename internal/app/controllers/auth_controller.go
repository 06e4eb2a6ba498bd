// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/access"
	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/metrics"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
)

// AuthController handles login, logout and the session cookie.
type AuthController struct {
	authService *services.AuthService
	jwtService  *auth.JWTService
	cookieName  string
	targets     access.Targets
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, jwtService *auth.JWTService, cookieName string, targets access.Targets, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		cookieName:  cookieName,
		targets:     targets,
		logger:      logger,
	}
}

// LoginPage describes the login form. The gate already redirected any
// authenticated caller to their own home before this runs.
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginPageResponse{
		Action: c.targets.Login,
		Method: http.MethodPost,
		Fields: []string{"email", "password"},
	}, "Login"))
}

// Login verifies credentials, sets the session cookie and redirects to
// the caller's role home. Bad credentials redirect back to the login
// page instead of returning an error payload.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed login request")
		ctx.Redirect(http.StatusFound, c.targets.Login)
		return
	}

	identity, token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Info().Str("email", req.Email).Msg("Login rejected")
		metrics.RecordLogin(false)
		ctx.Redirect(http.StatusFound, c.targets.Login)
		return
	}
	metrics.RecordLogin(true)

	maxAge := int(c.jwtService.SessionExpiry().Seconds())
	ctx.SetCookie(c.cookieName, token, maxAge, "/", "", false, true)
	ctx.Redirect(http.StatusFound, c.targets.HomeFor(identity.Role))
}

// Logout clears the session cookie and redirects to the login page.
// Safe to call without a session.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, c.targets.Login)
}
