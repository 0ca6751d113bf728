package ports

import (
	"file-vault-api/internal/domain/user"
)

type Auth interface {
	// GenerateToken checks the password against the stored hash and issues
	// a token. Failure is uniform: callers never learn whether the user was
	// unknown or the password wrong.
	GenerateToken(u *user.User, requestPassword string) (string, error)
	// IssueToken signs a token for an already-authenticated user
	// (auto-login right after registration).
	IssueToken(u *user.User) (string, error)
}
