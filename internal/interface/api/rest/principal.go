package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"file-vault-api/internal/interface/api/rest/middleware"
)

// principalUUID reads the identity the auth middleware resolved from the
// bearer token. False means the handler is running without the middleware,
// which is a wiring bug, not a client error.
func principalUUID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
