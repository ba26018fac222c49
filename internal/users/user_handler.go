package users

import (
	"net/http"

	"stockroom/internal/core/response"
	"stockroom/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UsersHandler struct {
	Repository UserRepository
	logger     *zap.Logger
}

func NewHandler(r UserRepository, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		Repository: r,
		logger:     logger,
	}
}

func (h *UsersHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/user", h.GetCurrentUser)
}

// GetCurrentUser answers with the bare user object; the navigation guard
// decodes it as is.
func (h *UsersHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := security.GetUserID(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	user, err := h.Repository.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
