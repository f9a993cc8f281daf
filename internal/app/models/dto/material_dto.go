package dto

import "github.com/bkaya/studentportal/internal/app/models"

// MaterialListResponse carries all materials newest-first plus the distinct
// subjects present, for client-side filtering.
type MaterialListResponse struct {
	Materials []models.StudyMaterial `json:"materials"`
	Subjects  []string               `json:"subjects"`
}

// UploadMaterialRequest holds the form fields accompanying an upload. The
// file itself travels as the "file" multipart part.
type UploadMaterialRequest struct {
	Title       string `form:"title" binding:"required" example:"Week1"`
	Description string `form:"description" example:"Lecture notes for week 1"`
	Subject     string `form:"subject" example:"Algorithms"`
	FileType    string `form:"fileType" example:"pdf"`
}
