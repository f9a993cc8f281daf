package dto

import (
	"time"

	"github.com/bkaya/studentportal/internal/app/models"
)

// SendMessageRequest is the payload for sending a direct message
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId" binding:"required" example:"3"`
	Content     string `json:"content" binding:"required" example:"Hello"`
}

// ConversationMessage is a received message joined with its sender's name
type ConversationMessage struct {
	ID         int64     `json:"id" db:"id"`
	Content    string    `json:"content" db:"content"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	SenderName string    `json:"senderName" db:"sender_name"`
	SentAt     time.Time `json:"sentAt" db:"sent_at"`
	IsRead     bool      `json:"isRead" db:"is_read"`
}

// ChatViewResponse is the role-specific chat view: students get the faculty
// list as conversation targets, faculty and admins get their received
// messages.
type ChatViewResponse struct {
	Faculty       []models.User         `json:"faculty,omitempty"`
	Conversations []ConversationMessage `json:"conversations,omitempty"`
}
