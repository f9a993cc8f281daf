package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// TimetableController serves the class schedule
type TimetableController struct {
	timetableService services.TimetableService
	logger           zerolog.Logger
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService, logger zerolog.Logger) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
		logger:           logger,
	}
}

// Get returns the caller's visible schedule
// @Summary Get timetable
// @Description Students see their own department's entries; faculty and admins see the full schedule.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableEntry} "Timetable entries"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /timetable [get]
func (c *TimetableController) Get(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, ok := middleware.CurrentRole(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	entries, err := c.timetableService.GetForUser(ctx.Request.Context(), userID, role)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to load timetable")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}
