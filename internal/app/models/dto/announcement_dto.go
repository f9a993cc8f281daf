package dto

// CreateAnnouncementRequest is the payload for posting an announcement
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required" example:"Midterm schedule"`
	Content  string `json:"content" binding:"required" example:"Midterms start on Monday."`
	IsUrgent bool   `json:"isUrgent" example:"false"`
}
