package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// CSV column sets match the original dashboard exports exactly.
var (
	InventoryCSVHeader = []string{"type", "item_id", "description", "serial_or_imei", "qty", "cost", "sell", "profit_total", "profit_each"}
	SalesCSVHeader     = []string{"sold_at", "type", "item_id", "description", "serial_or_imei", "sold_qty", "sold_price", "cost_at_sale", "profit"}
)

// money renders a decimal with exactly two fraction digits, the way the
// dashboard displayed amounts.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orDash(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// InventoryRow projects one item to its CSV row.
func InventoryRow(it *models.InventoryItem) []string {
	return []string{
		it.ItemType,
		orDash(it.ItemSKU),
		orDash(it.Description),
		orDash(it.SerialOrIMEI),
		strconv.Itoa(it.Qty),
		money(it.Cost),
		money(it.Sell),
		money(it.ProfitTotal()),
		money(it.ProfitEach()),
	}
}

// SaleRow projects one sale record to its CSV row. Descriptive columns come
// from the record's own snapshot, so exports are stable even after the item
// is edited or deleted.
func SaleRow(s *models.SaleRecord) []string {
	return []string{
		s.SoldAt.Format(time.RFC3339),
		s.ItemType,
		orDash(s.ItemSKU),
		orDash(s.Description),
		orDash(s.SerialOrIMEI),
		strconv.Itoa(s.SoldQty),
		money(s.SoldPrice),
		money(s.CostAtSale),
		money(s.Profit),
	}
}

// WriteCSV writes a header and rows with RFC 4180 quoting, so fields holding
// commas, quotes or newlines round-trip through any conformant reader.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename builds the download name with the current date embedded,
// e.g. inventory_2026-08-28.csv.
func ExportFilename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, t.Format("2006-01-02"))
}

// --- ExportService Interface ---
type ExportService interface {
	ExportInventoryCSV(actor models.Actor, w io.Writer) error
	ExportSalesCSV(actor models.Actor, w io.Writer) error
}

// --- exportService Implementation ---
type exportService struct {
	inventoryRepo repositories.InventoryRepository
	salesRepo     repositories.SalesRepository
}

// NewExportService creates a new instance of ExportService.
func NewExportService(ir repositories.InventoryRepository, sr repositories.SalesRepository) ExportService {
	return &exportService{
		inventoryRepo: ir,
		salesRepo:     sr,
	}
}

func (s *exportService) ExportInventoryCSV(actor models.Actor, w io.Writer) error {
	if actor.CompanyID == 0 {
		return ErrCompanyUnresolved
	}
	items, err := s.inventoryRepo.GetItems(actor.CompanyID, "")
	if err != nil {
		return fmt.Errorf("failed to get items for export: %w", err)
	}
	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, InventoryRow(&items[i]))
	}
	return WriteCSV(w, InventoryCSVHeader, rows)
}

func (s *exportService) ExportSalesCSV(actor models.Actor, w io.Writer) error {
	if actor.CompanyID == 0 {
		return ErrCompanyUnresolved
	}
	sales, err := s.salesRepo.GetSales(actor.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to get sales for export: %w", err)
	}
	rows := make([][]string, 0, len(sales))
	for i := range sales {
		rows = append(rows, SaleRow(&sales[i]))
	}
	return WriteCSV(w, SalesCSVHeader, rows)
}
