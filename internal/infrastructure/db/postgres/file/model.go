package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID     uint64
		UUID   uuid.UUID
		UserID uint64

		StoredName   string
		OriginalName string
		MimeType     string
		SizeBytes    uint64

		CreatedAt time.Time
	}
	Files []*File
)
