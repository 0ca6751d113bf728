package ports

import (
	"context"

	"file-vault-api/internal/domain/user"
)

type UserService interface {
	RegisterUser(ctx context.Context, username, rawPassword string) (*user.User, error)
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}
