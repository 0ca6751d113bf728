package file

import (
	"context"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

// Repository is the only sanctioned way to reach a file row. Every method
// other than CreateFile takes the owner id, so no code path can resolve a
// file by id alone.
type Repository interface {
	FetchFilesByOwner(ctx context.Context, ownerID user.ID, page int) (Files, error)
	CreateFile(ctx context.Context, ownerID user.ID, req *File) (*File, error)
	FetchOwnedFile(ctx context.Context, fileUUID uuid.UUID, ownerID user.ID) (*File, error)
	// DeleteOwnedFile removes the row and returns the stored name needed for
	// the blob removal step. A row that is absent or owned by someone else is
	// the same ErrFileNotFound.
	DeleteOwnedFile(ctx context.Context, fileUUID uuid.UUID, ownerID user.ID) (string, error)
}
