package handlers

import (
	"errors"
	"net/http"

	"inventory_pos_backend/internal/services"
	"inventory_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// respondLedgerError maps the shared ledger error sentinels to HTTP responses.
// Store-level messages are surfaced in the details field.
func respondLedgerError(c *gin.Context, err error, logContext string) {
	utils.LogError(err, logContext)
	switch {
	case errors.Is(err, services.ErrCompanyUnresolved):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No company profile linked to this user. Ask an admin to link your account.", err.Error()))
	case errors.Is(err, services.ErrNotAuthorized):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission for this operation.", err.Error()))
	case errors.Is(err, services.ErrItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid input.", err.Error()))
	case errors.Is(err, services.ErrInsufficientStock):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Not enough quantity in stock.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Operation failed.", err.Error()))
	}
}

// CreateItem handles adding a new inventory item.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req services.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.CreateItem(actor, req)
	if err != nil {
		respondLedgerError(c, err, "CreateItem: Error from inventoryService.CreateItem")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItems handles fetching the company's items, optionally filtered by a
// search term over SKU / description / serial.
func (h *InventoryHandler) GetItems(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	items, err := h.inventoryService.GetItems(actor, c.Query("q"))
	if err != nil {
		respondLedgerError(c, err, "GetItems: Error from inventoryService.GetItems")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID handles fetching a single item.
func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item ID.", err.Error()))
		return
	}

	item, err := h.inventoryService.GetItemByID(actor, itemID)
	if err != nil {
		respondLedgerError(c, err, "GetItemByID: Error from inventoryService.GetItemByID")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem handles a full overwrite of an item's mutable fields.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item ID.", err.Error()))
		return
	}

	var req services.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateItem(actor, itemID, req)
	if err != nil {
		respondLedgerError(c, err, "UpdateItem: Error from inventoryService.UpdateItem")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles deleting an item. The route carries the admin role
// middleware and the service re-checks, so the authoritative gate is always
// server-side.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item ID.", err.Error()))
		return
	}

	if err := h.inventoryService.DeleteItem(actor, itemID); err != nil {
		respondLedgerError(c, err, "DeleteItem: Error from inventoryService.DeleteItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
