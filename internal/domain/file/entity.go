package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID uuid.UUID

		StoredName   string
		OriginalName string
		MimeType     string
		SizeBytes    uint64
		// DownloadURL is derived from StoredName at read time, never persisted.
		DownloadURL string

		CreatedAt time.Time
	}
	Files []*File
)
