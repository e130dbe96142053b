package handlers

import (
	"net/http"

	"inventory_pos_backend/internal/services"
	"inventory_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// Sell records a sale against an item: one transaction creates the sale
// record and decrements stock, so the caller never sees one without the other.
func (h *SaleHandler) Sell(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item ID.", err.Error()))
		return
	}

	var req services.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Sell: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	sale, err := h.saleService.Sell(actor, itemID, req)
	if err != nil {
		respondLedgerError(c, err, "Sell: Error from saleService.Sell")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// GetSales handles fetching the company's sale history, newest first.
func (h *SaleHandler) GetSales(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	sales, err := h.saleService.GetSales(actor)
	if err != nil {
		respondLedgerError(c, err, "GetSales: Error from saleService.GetSales")
		return
	}
	c.JSON(http.StatusOK, sales)
}
