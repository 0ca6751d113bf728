package user

import (
	"file-vault-api/internal/domain/user"
)

// ToResponseUser exposes public fields only; the password hash never
// crosses this boundary.
func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:      uDomain.UUID,
		Username:  uDomain.Username,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}
