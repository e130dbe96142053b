package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one completed sale transition. ItemType/ItemSKU/Description/
// SerialOrIMEI are snapshots of the item taken when the sale was recorded, so
// history stays meaningful after the item is edited or deleted. ItemID is a
// weak back-reference and becomes NULL when the item is deleted.
type SaleRecord struct {
	ID           int64           `json:"id" db:"id"`
	CompanyID    int64           `json:"company_id" db:"company_id"`
	ItemID       *int64          `json:"item_id,omitempty" db:"item_id"`
	ItemType     string          `json:"item_type" db:"item_type"`
	ItemSKU      *string         `json:"item_sku,omitempty" db:"item_sku"`
	Description  *string         `json:"description,omitempty" db:"description"`
	SerialOrIMEI *string         `json:"serial_or_imei,omitempty" db:"serial_or_imei"`
	SoldQty      int             `json:"sold_qty" db:"sold_qty"`
	SoldPrice    decimal.Decimal `json:"sold_price" db:"sold_price"`       // price per unit actually charged
	CostAtSale   decimal.Decimal `json:"cost_at_sale" db:"cost_at_sale"`   // unit cost snapshot, never recomputed
	Profit       decimal.Decimal `json:"profit" db:"profit"`               // (sold_price - cost_at_sale) * sold_qty, stored once
	SoldAt       time.Time       `json:"sold_at" db:"sold_at"`
	SoldBy       *int64          `json:"sold_by,omitempty" db:"sold_by"`
}
