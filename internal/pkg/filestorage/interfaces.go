package filestorage

import "mime/multipart"

// Storage abstracts where uploaded study materials live.
type Storage interface {
	// SaveFile stores an uploaded file and returns the filename it was
	// stored under.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	// FilePath returns the filesystem path for a stored filename.
	FilePath(filename string) string
	// DeleteFile removes a stored file. Missing files are not an error.
	DeleteFile(filename string) error
}
