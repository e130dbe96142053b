package handlers

import (
	"net/http"

	"inventory_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetSummary provides the dashboard card figures: inventory totals plus sale
// counts and realized profit.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	summary, err := h.reportService.GetSummary(actor)
	if err != nil {
		respondLedgerError(c, err, "GetSummary: Error from reportService.GetSummary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
