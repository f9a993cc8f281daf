package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// AdminController handles admin-only user management and maintenance
type AdminController struct {
	userService        services.UserService
	maintenanceService services.MaintenanceService
	logger             zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(userService services.UserService, maintenanceService services.MaintenanceService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		userService:        userService,
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// ListUsers returns all accounts
// @Summary List users
// @Description Returns every account for the admin user management view
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary} "Users"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list users")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users))
}

// DeleteUser removes an account
// @Summary Delete user
// @Description Deletes a non-admin account together with its dependent records
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted"
// @Failure 400 {object} dto.APIResponse "Invalid user ID"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin accounts cannot be deleted"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid user ID")))
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		c.logger.Warn().Err(err).Int64("userId", id).Msg("User deletion rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "User deleted"}))
}

// Reset wipes all portal data and restores the seed state
// @Summary Reset database
// @Description Destroys all data, including user accounts, and reseeds the default admin and sample timetable
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Database reset"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/reset [post]
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.maintenanceService.ResetDatabase(ctx.Request.Context()); err != nil {
		c.logger.Error().Err(err).Msg("Database reset failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Database reset"}))
}
