package services

import (
	"fmt"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// ComputeTotals aggregates an item snapshot into the dashboard card figures.
// Pure function: no store interaction, recomputed on every snapshot.
func ComputeTotals(items []models.InventoryItem) models.InventoryTotals {
	totalCost := decimal.Zero
	totalSell := decimal.Zero
	for i := range items {
		qty := decimal.NewFromInt(int64(items[i].Qty))
		totalCost = totalCost.Add(items[i].Cost.Mul(qty))
		totalSell = totalSell.Add(items[i].Sell.Mul(qty))
	}
	return models.InventoryTotals{
		TotalCost:   totalCost,
		TotalSell:   totalSell,
		TotalProfit: totalSell.Sub(totalCost),
	}
}

// --- ReportService Interface ---
type ReportService interface {
	GetSummary(actor models.Actor) (*models.SummaryReport, error)
}

// --- reportService Implementation ---
type reportService struct {
	inventoryRepo repositories.InventoryRepository
	salesRepo     repositories.SalesRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(ir repositories.InventoryRepository, sr repositories.SalesRepository) ReportService {
	return &reportService{
		inventoryRepo: ir,
		salesRepo:     sr,
	}
}

// GetSummary combines the projected inventory totals with realized sale
// figures for the reports endpoint.
func (s *reportService) GetSummary(actor models.Actor) (*models.SummaryReport, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}

	items, err := s.inventoryRepo.GetItems(actor.CompanyID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get items for summary: %w", err)
	}

	saleCount, realizedProfit, err := s.salesRepo.GetSalesSummary(actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}

	unitsOnHand := 0
	for i := range items {
		unitsOnHand += items[i].Qty
	}

	return &models.SummaryReport{
		InventoryTotals: ComputeTotals(items),
		ItemCount:       len(items),
		UnitsOnHand:     unitsOnHand,
		SaleCount:       saleCount,
		RealizedProfit:  realizedProfit,
	}, nil
}
