package services

import (
	"context"
	"fmt"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type chatService struct {
	messageRepo   repositories.IMessageRepository
	userRepo      repositories.IUserRepository
	notifications NotificationService
}

// NewChatService creates a new instance of ChatService
func NewChatService(
	messageRepo repositories.IMessageRepository,
	userRepo repositories.IUserRepository,
	notifications NotificationService,
) ChatService {
	return &chatService{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// GetView returns the role-specific chat view. Students get the faculty list
// as message targets; faculty and admins get the messages sent to them.
func (s *chatService) GetView(ctx context.Context, userID int64, role models.Role) (*dto.ChatViewResponse, error) {
	view := &dto.ChatViewResponse{}

	if role == models.RoleStudent {
		faculty, err := s.userRepo.GetByRole(ctx, models.RoleFaculty)
		if err != nil {
			return nil, fmt.Errorf("failed to list faculty: %w", err)
		}
		view.Faculty = faculty
		return view, nil
	}

	conversations, err := s.messageRepo.GetConversationsForRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	view.Conversations = conversations

	return view, nil
}

// Send delivers a direct message and notifies the recipient
func (s *chatService) Send(ctx context.Context, senderID int64, senderName string, req *dto.SendMessageRequest) (*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, req.RecipientID); err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, err
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}

	id, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	message.ID = id

	content := fmt.Sprintf("New message from %s", senderName)
	if err := s.notifications.Notify(ctx, req.RecipientID, content, "/chat"); err != nil {
		logger.Error().Err(err).Int64("messageId", id).Msg("Failed to notify message recipient")
	}

	return message, nil
}
