package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/middleware"
)

// ChatController handles direct messaging operations
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// GetView returns the role-specific chat view
// @Summary Get chat view
// @Description Students receive the faculty list as message targets; faculty and admins receive the messages sent to them, newest first.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChatViewResponse} "Chat view"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /chat [get]
func (c *ChatController) GetView(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, ok := middleware.CurrentRole(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	view, err := c.chatService.GetView(ctx.Request.Context(), userID, role)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to build chat view")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}

// Send delivers a direct message
// @Summary Send message
// @Description Sends a direct message to another user and notifies them
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message content and recipient"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Recipient not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /chat/messages [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid message payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	userName := middleware.CurrentUserName(ctx)

	message, err := c.chatService.Send(ctx.Request.Context(), userID, userName, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("recipientId", req.RecipientID).Msg("Failed to send message")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}
