package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

type FileService interface {
	FindFiles(ctx context.Context, userUUID user.UUID, page int) (file.Files, error)
	UploadFile(ctx context.Context, userUUID user.UUID, in *multipart.FileHeader) (*file.File, error)
	DeleteFile(ctx context.Context, userUUID user.UUID, fileUUID uuid.UUID) error
}
