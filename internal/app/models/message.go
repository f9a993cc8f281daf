package models

import "time"

// Message defines the direct message model based on the 'messages' table
type Message struct {
	ID          int64     `json:"id" db:"id"`
	Content     string    `json:"content" db:"content"`
	SenderID    int64     `json:"senderId" db:"sender_id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	SentAt      time.Time `json:"sentAt" db:"sent_at"`
	IsRead      bool      `json:"isRead" db:"is_read"`
}
