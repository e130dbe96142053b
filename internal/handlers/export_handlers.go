package handlers

import (
	"bytes"
	"net/http"
	"time"

	"inventory_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service.
type ExportHandler struct {
	exportService services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

// ExportInventoryCSV streams the inventory snapshot as a CSV download with
// the current date in the filename.
func (h *ExportHandler) ExportInventoryCSV(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportInventoryCSV(actor, &buf); err != nil {
		respondLedgerError(c, err, "ExportInventoryCSV: Error from exportService")
		return
	}

	filename := services.ExportFilename("inventory", time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportSalesCSV streams the sale history as a CSV download.
func (h *ExportHandler) ExportSalesCSV(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportSalesCSV(actor, &buf); err != nil {
		respondLedgerError(c, err, "ExportSalesCSV: Error from exportService")
		return
	}

	filename := services.ExportFilename("sales", time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
