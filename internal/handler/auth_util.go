package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"content-admin-api/internal/response"
)

// AuthData holds the authenticated user identity set by the auth middleware.
type AuthData struct {
	UserID uuid.UUID
}

// ExtractAuthData reads the authenticated user from the Gin context. On
// failure it writes the error response and returns false.
func ExtractAuthData(c *gin.Context) (AuthData, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return AuthData{}, false
	}
	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return AuthData{}, false
	}

	return AuthData{UserID: userUUID}, true
}
