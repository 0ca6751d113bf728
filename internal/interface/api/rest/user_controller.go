package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/infrastructure/jwt"
	"file-vault-api/internal/interface/api/rest/dto/user"
	"file-vault-api/internal/interface/api/rest/middleware"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteProfile, middleware.AuthMiddleware(jwtService), uc.GetProfileHandler)

	return uc
}

func (uc *UserController) GetProfileHandler(c *gin.Context) {
	uuid, ok := principalUUID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing principal"},
		)
		return
	}

	u, err := uc.userService.FindUserByUUID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByUUID() error", zap.Error(err))
		return
	}

	// token may outlive the account
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
