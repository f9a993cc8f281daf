package models

import "time"

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	PostedBy  int64     `json:"postedBy" db:"posted_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	IsUrgent  bool      `json:"isUrgent" db:"is_urgent"`
}
