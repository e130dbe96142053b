package handlers

import (
	"net/http"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the caller identity the auth middleware stored in
// the gin context. Returns false (with a 401 already written) if the request
// somehow reached a handler without passing through AuthMiddleware.
func actorFromContext(c *gin.Context) (models.Actor, bool) {
	userIDRaw, exists := c.Get("userID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing user ID in context"))
		return models.Actor{}, false
	}
	userID, ok := userIDRaw.(int64)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Invalid user ID in context.", ""))
		return models.Actor{}, false
	}

	return models.Actor{
		UserID:    userID,
		Email:     c.GetString("userEmail"),
		CompanyID: c.GetInt64("companyID"),
		Role:      c.GetString("userRole"),
	}, true
}
