package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// DashboardController serves the role-specific dashboard
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns the caller's dashboard
// @Summary Get dashboard
// @Description Returns the role-specific summary: recent announcements and unread counts for everyone, plus admin totals, faculty workload or the student timetable.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard data"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, ok := middleware.CurrentRole(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	dashboard, err := c.dashboardService.GetDashboard(ctx.Request.Context(), userID, role)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to build dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}
