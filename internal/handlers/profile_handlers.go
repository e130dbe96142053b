package handlers

import (
	"errors"
	"net/http"

	"inventory_pos_backend/internal/services"
	"inventory_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service.
type ProfileHandler struct {
	profileService services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfiles lists the company's linked users for the users tab.
func (h *ProfileHandler) GetProfiles(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	profiles, err := h.profileService.GetProfiles(actor)
	if err != nil {
		respondLedgerError(c, err, "GetProfiles: Error from profileService.GetProfiles")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// LinkUser links an existing user account to the admin's company with a role.
func (h *ProfileHandler) LinkUser(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req services.LinkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "LinkUser: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	profile, err := h.profileService.LinkUser(actor, req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found. Staff must register before being linked.", err.Error()))
			return
		}
		respondLedgerError(c, err, "LinkUser: Error from profileService.LinkUser")
		return
	}
	c.JSON(http.StatusCreated, profile)
}
