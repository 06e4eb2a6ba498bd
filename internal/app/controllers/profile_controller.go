package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/middleware"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// ProfileController handles the self-service profile endpoints shared by
// the three realms. The session role decides which profile is attached.
type ProfileController struct {
	accounts *services.AccountService
	logger   zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(accounts *services.AccountService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{accounts: accounts, logger: logger}
}

// Show returns the caller's own identity together with their role profile
func (c *ProfileController) Show(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	identity, err := c.accounts.GetIdentity(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	switch identity.Role {
	case models.RoleStaff:
		profile, err := c.accounts.GetStaffProfile(ctx.Request.Context(), userID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		profile.User = identity
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffResponse(profile), "Profile"))
	case models.RoleStudent:
		profile, err := c.accounts.GetStudentProfile(ctx.Request.Context(), userID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		profile.User = identity
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentResponse(profile), "Profile"))
	default:
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(identity, "Profile"))
	}
}

// Update changes the caller's first and last name, optionally the
// password, and for staff and students the address
func (c *ProfileController) Update(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	if userID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	err := c.accounts.UpdateOwnProfile(ctx.Request.Context(), userID,
		req.FirstName, req.LastName, req.Password, req.Address)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Profile updated"}, "Profile updated"))
}
