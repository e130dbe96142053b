package models

import "github.com/shopspring/decimal"

// InventoryTotals are the aggregate figures shown on the dashboard cards:
// TotalCost = sum(cost*qty), TotalSell = sum(sell*qty), TotalProfit = the
// difference. Pure projection of an item snapshot, no store interaction.
type InventoryTotals struct {
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalSell   decimal.Decimal `json:"total_sell"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// SummaryReport extends the totals with counts and realized profit for the
// reports endpoint.
type SummaryReport struct {
	InventoryTotals
	ItemCount      int             `json:"item_count"`
	UnitsOnHand    int             `json:"units_on_hand"`
	SaleCount      int             `json:"sale_count"`
	RealizedProfit decimal.Decimal `json:"realized_profit"` // sum of profit over all recorded sales
}
