package models

import "time"

// Notification defines the notification model based on the 'notifications'
// table. Rows are created only by the application itself in response to
// domain events, never from direct user input.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Link      string    `json:"link,omitempty" db:"link"`
}
