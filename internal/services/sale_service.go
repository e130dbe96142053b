package services

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// --- Sale DTOs ---

// SellRequest records a sale of SoldQty units at SoldPrice each.
type SellRequest struct {
	SoldQty   int             `json:"sold_qty" binding:"required"`
	SoldPrice decimal.Decimal `json:"sold_price"`
}

// --- SaleService Interface ---
type SaleService interface {
	Sell(actor models.Actor, itemID int64, req SellRequest) (*models.SaleRecord, error)
	GetSales(actor models.Actor) ([]models.SaleRecord, error)
}

// --- saleService Implementation ---
type saleService struct {
	inventoryRepo repositories.InventoryRepository
	salesRepo     repositories.SalesRepository
	txs           TxBeginner
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(ir repositories.InventoryRepository, sr repositories.SalesRepository, db *sql.DB) SaleService {
	return &saleService{
		inventoryRepo: ir,
		salesRepo:     sr,
		txs:           NewTxBeginner(db),
	}
}

// ComputeProfit returns (soldPrice - costAtSale) * qty. Profit is computed
// once when the sale is recorded and stored; it is never recomputed from the
// item, so later cost edits cannot move history.
func ComputeProfit(soldPrice, costAtSale decimal.Decimal, qty int) decimal.Decimal {
	return soldPrice.Sub(costAtSale).Mul(decimal.NewFromInt(int64(qty)))
}

// NewSaleRecord builds the sale row for an item being sold: it snapshots the
// unit cost and the descriptive fields at this moment, so the record stands
// on its own after the item is edited or deleted.
func NewSaleRecord(actor models.Actor, item *models.InventoryItem, req SellRequest) models.SaleRecord {
	itemID := item.ID
	return models.SaleRecord{
		CompanyID:    actor.CompanyID,
		ItemID:       &itemID,
		ItemType:     item.ItemType,
		ItemSKU:      item.ItemSKU,
		Description:  item.Description,
		SerialOrIMEI: item.SerialOrIMEI,
		SoldQty:      req.SoldQty,
		SoldPrice:    req.SoldPrice,
		CostAtSale:   item.Cost,
		Profit:       ComputeProfit(req.SoldPrice, item.Cost, req.SoldQty),
		SoldBy:       &actor.UserID,
	}
}

// Sell records a sale and decrements stock as one transaction. Callers never
// observe a sale without its decrement or vice versa. The quantity bounds
// check runs twice: once against the row locked in this transaction, and again
// inside the conditional UPDATE itself, so concurrent sessions cannot drive
// stock negative.
func (s *saleService) Sell(actor models.Actor, itemID int64, req SellRequest) (*models.SaleRecord, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	if req.SoldQty <= 0 {
		return nil, fmt.Errorf("%w: sold quantity must be positive", ErrInvalidQuantity)
	}
	if req.SoldPrice.IsNegative() {
		return nil, fmt.Errorf("%w: sold price cannot be negative", ErrValidation)
	}

	tx, err := s.txs.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := s.inventoryRepo.GetItemForUpdate(tx, actor.CompanyID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item for sale: %w", err)
	}

	if req.SoldQty > item.Qty {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, req.SoldQty, item.Qty)
	}

	if _, err := s.inventoryRepo.DecrementQty(tx, actor.CompanyID, itemID, req.SoldQty); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: stock changed while recording sale", ErrInsufficientStock)
		}
		return nil, fmt.Errorf("failed to decrement stock for item %d: %w", itemID, err)
	}

	sale := NewSaleRecord(actor, item, req)

	if _, err := s.salesRepo.CreateSale(tx, &sale); err != nil {
		return nil, fmt.Errorf("failed to create sale record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale transaction: %w", err)
	}
	return &sale, nil
}

func (s *saleService) GetSales(actor models.Actor) ([]models.SaleRecord, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	sales, err := s.salesRepo.GetSales(actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale records: %w", err)
	}
	return sales, nil
}
