package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID      uuid.UUID `json:"uuid"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
	}
)
