package services

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"
	"inventory_pos_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// --- Item DTOs ---

// ItemRequest is used for both add and edit: an edit is a full overwrite of
// the mutable fields, last writer wins.
type ItemRequest struct {
	ItemType     string          `json:"item_type" binding:"required"`
	ItemSKU      string          `json:"item_sku"`
	Description  string          `json:"description"`
	SerialOrIMEI string          `json:"serial_or_imei"`
	Cost         decimal.Decimal `json:"cost"` // defaults to 0
	Sell         decimal.Decimal `json:"sell"` // defaults to 0
	Qty          int             `json:"qty"`  // defaults to 0
}

func (req *ItemRequest) validate() error {
	if !models.IsValidItemType(req.ItemType) {
		return fmt.Errorf("%w: item_type must be one of phone, laptop, tablet", ErrValidation)
	}
	if req.Cost.IsNegative() {
		return fmt.Errorf("%w: cost cannot be negative", ErrValidation)
	}
	if req.Sell.IsNegative() {
		return fmt.Errorf("%w: sell cannot be negative", ErrValidation)
	}
	if req.Qty < 0 {
		return fmt.Errorf("%w: qty cannot be negative", ErrValidation)
	}
	return nil
}

// --- InventoryService Interface ---
type InventoryService interface {
	CreateItem(actor models.Actor, req ItemRequest) (*models.InventoryItem, error)
	GetItems(actor models.Actor, search string) ([]models.InventoryItem, error)
	GetItemByID(actor models.Actor, itemID int64) (*models.InventoryItem, error)
	UpdateItem(actor models.Actor, itemID int64, req ItemRequest) (*models.InventoryItem, error)
	DeleteItem(actor models.Actor, itemID int64) error
}

// --- inventoryService Implementation ---
type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(ir repositories.InventoryRepository, db *sql.DB) InventoryService {
	return &inventoryService{
		inventoryRepo: ir,
		db:            db,
	}
}

// CreateItem adds one inventory item scoped to the actor's company, stamped
// with the actor as creator.
func (s *inventoryService) CreateItem(actor models.Actor, req ItemRequest) (*models.InventoryItem, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		CompanyID:    actor.CompanyID,
		ItemType:     req.ItemType,
		ItemSKU:      utils.TrimToNull(req.ItemSKU),
		Description:  utils.TrimToNull(req.Description),
		SerialOrIMEI: utils.TrimToNull(req.SerialOrIMEI),
		Cost:         req.Cost,
		Sell:         req.Sell,
		Qty:          req.Qty,
		CreatedBy:    actor.UserID,
	}

	if _, err := s.inventoryRepo.CreateItem(s.db, &item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return &item, nil
}

func (s *inventoryService) GetItems(actor models.Actor, search string) ([]models.InventoryItem, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	items, err := s.inventoryRepo.GetItems(actor.CompanyID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) GetItemByID(actor models.Actor, itemID int64) (*models.InventoryItem, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	item, err := s.inventoryRepo.GetItemByID(actor.CompanyID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// UpdateItem overwrites the mutable fields of an existing item. The company,
// creator and creation time never change.
func (s *inventoryService) UpdateItem(actor models.Actor, itemID int64, req ItemRequest) (*models.InventoryItem, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetItemByID(actor.CompanyID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item for update: %w", err)
	}

	item.ItemType = req.ItemType
	item.ItemSKU = utils.TrimToNull(req.ItemSKU)
	item.Description = utils.TrimToNull(req.Description)
	item.SerialOrIMEI = utils.TrimToNull(req.SerialOrIMEI)
	item.Cost = req.Cost
	item.Sell = req.Sell
	item.Qty = req.Qty

	if err := s.inventoryRepo.UpdateItem(s.db, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item permanently. Admin only; the role check here is
// authoritative regardless of what the UI showed. Sale history survives via
// the snapshots denormalized onto sale rows.
func (s *inventoryService) DeleteItem(actor models.Actor, itemID int64) error {
	if actor.CompanyID == 0 {
		return ErrCompanyUnresolved
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admin can delete items", ErrNotAuthorized)
	}

	if err := s.inventoryRepo.DeleteItem(s.db, actor.CompanyID, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}
