package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// GetAll lists all announcements
// @Summary List announcements
// @Description Returns every announcement, newest first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /announcements [get]
func (c *AnnouncementController) GetAll(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list announcements")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// Create posts a new announcement
// @Summary Post announcement
// @Description Creates an announcement and notifies every user. Admins and faculty only.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement content"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement created"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid announcement payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	announcement, err := c.announcementService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create announcement")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(announcement))
}
