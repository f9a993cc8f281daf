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

// LeaveController handles leave application operations
type LeaveController struct {
	leaveService services.LeaveService
	logger       zerolog.Logger
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService services.LeaveService, logger zerolog.Logger) *LeaveController {
	return &LeaveController{
		leaveService: leaveService,
		logger:       logger,
	}
}

// Apply submits a leave application
// @Summary Apply for leave
// @Description Submits a leave application. Students only; every faculty member is notified.
// @Tags leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyLeaveRequest true "Leave dates and reason"
// @Success 201 {object} dto.APIResponse{data=models.LeaveApplication} "Application submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request format or invalid dates"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave [post]
func (c *LeaveController) Apply(ctx *gin.Context) {
	var req dto.ApplyLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid leave application payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	userName := middleware.CurrentUserName(ctx)

	application, err := c.leaveService.Apply(ctx.Request.Context(), userID, userName, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userId", userID).Msg("Leave application rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// ListPending lists pending applications
// @Summary List pending leave applications
// @Description Returns all pending applications with applicant names. Admins and faculty only.
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PendingLeave} "Pending applications"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave/pending [get]
func (c *LeaveController) ListPending(ctx *gin.Context) {
	pending, err := c.leaveService.ListPending(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list pending leaves")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pending))
}

// Decide approves or rejects an application
// @Summary Decide a leave application
// @Description Approves or rejects a pending application and notifies the applicant. The decision path segment must be "approve" or "reject". Admins and faculty only.
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Param decision path string true "approve or reject"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveDecisionResponse} "Decision recorded"
// @Failure 400 {object} dto.APIResponse "Invalid decision"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Insufficient permissions"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Failure 409 {object} dto.APIResponse "Application already decided"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave/{id}/{decision} [post]
func (c *LeaveController) Decide(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid leave application ID")))
		return
	}
	decision := ctx.Param("decision")

	reviewerID, _ := middleware.CurrentUserID(ctx)

	application, err := c.leaveService.Decide(ctx.Request.Context(), id, decision, reviewerID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("leaveId", id).Str("decision", decision).Msg("Leave decision rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LeaveDecisionResponse{
		Application: *application,
		Decision:    decision,
	}))
}
