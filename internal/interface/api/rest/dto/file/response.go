package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID         uuid.UUID `json:"uuid"`
		OriginalName string    `json:"original_name"`
		MimeType     string    `json:"mime_type"`
		SizeBytes    uint64    `json:"size_bytes"`
		DownloadURL  string    `json:"download_url"`
		CreatedAt    time.Time `json:"created_at"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
