package models

import "time"

// StudyMaterial defines the study material model based on the 'study_materials' table.
// Filename references a file in the configured upload directory.
type StudyMaterial struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Filename    string    `json:"filename" db:"filename"`
	Description string    `json:"description,omitempty" db:"description"`
	UploadedBy  int64     `json:"uploadedBy" db:"uploaded_by"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`
	Subject     string    `json:"subject,omitempty" db:"subject"`
	FileType    string    `json:"fileType,omitempty" db:"file_type"`
}
