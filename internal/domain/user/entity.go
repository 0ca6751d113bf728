package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// ID is the internal surrogate key. It never leaves the service;
	// all external references use the public UUID.
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Username     string
		PasswordHash *string

		CreatedAt time.Time
	}
	Users []*User
)
