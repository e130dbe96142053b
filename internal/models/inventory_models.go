package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item types accepted by the inventory. The shop trades in exactly these.
const (
	ItemTypePhone  = "phone"
	ItemTypeLaptop = "laptop"
	ItemTypeTablet = "tablet"
)

// IsValidItemType reports whether s is a known inventory item type.
func IsValidItemType(s string) bool {
	switch s {
	case ItemTypePhone, ItemTypeLaptop, ItemTypeTablet:
		return true
	}
	return false
}

// InventoryItem represents a stock line owned by one company.
// Qty is never negative: the CHECK constraint and the conditional decrement in
// the sales repository both enforce it.
type InventoryItem struct {
	ID           int64           `json:"id" db:"id"`
	CompanyID    int64           `json:"company_id" db:"company_id"`
	ItemType     string          `json:"item_type" db:"item_type"`
	ItemSKU      *string         `json:"item_sku,omitempty" db:"item_sku"`
	Description  *string         `json:"description,omitempty" db:"description"`
	SerialOrIMEI *string         `json:"serial_or_imei,omitempty" db:"serial_or_imei"`
	Cost         decimal.Decimal `json:"cost" db:"cost"` // unit cost
	Sell         decimal.Decimal `json:"sell" db:"sell"` // unit list price
	Qty          int             `json:"qty" db:"qty"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	CreatedBy    int64           `json:"created_by" db:"created_by"`
}

// ProfitEach returns the per-unit margin (sell - cost). Negative margins are
// allowed and displayed as-is.
func (it *InventoryItem) ProfitEach() decimal.Decimal {
	return it.Sell.Sub(it.Cost)
}

// ProfitTotal returns ProfitEach multiplied by the quantity on hand.
func (it *InventoryItem) ProfitTotal() decimal.Decimal {
	return it.ProfitEach().Mul(decimal.NewFromInt(int64(it.Qty)))
}
