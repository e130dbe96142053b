package services

import (
	"testing"

	"inventory_pos_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name       string
		items      []models.InventoryItem
		wantCost   string
		wantSell   string
		wantProfit string
	}{
		{
			name:       "empty inventory",
			items:      nil,
			wantCost:   "0",
			wantSell:   "0",
			wantProfit: "0",
		},
		{
			name: "single item scales with qty",
			items: []models.InventoryItem{
				{Cost: dec("100"), Sell: dec("150"), Qty: 5},
			},
			wantCost:   "500",
			wantSell:   "750",
			wantProfit: "250",
		},
		{
			name: "zero qty contributes nothing",
			items: []models.InventoryItem{
				{Cost: dec("100"), Sell: dec("150"), Qty: 0},
			},
			wantCost:   "0",
			wantSell:   "0",
			wantProfit: "0",
		},
		{
			name: "sums across items, negative margin allowed",
			items: []models.InventoryItem{
				{Cost: dec("100"), Sell: dec("150"), Qty: 2},
				{Cost: dec("300"), Sell: dec("250"), Qty: 1},
			},
			wantCost:   "500",
			wantSell:   "550",
			wantProfit: "50",
		},
		{
			name: "fractional prices",
			items: []models.InventoryItem{
				{Cost: dec("10.25"), Sell: dec("19.99"), Qty: 3},
			},
			wantCost:   "30.75",
			wantSell:   "59.97",
			wantProfit: "29.22",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)
			assert.True(t, got.TotalCost.Equal(dec(tt.wantCost)), "total_cost = %s", got.TotalCost)
			assert.True(t, got.TotalSell.Equal(dec(tt.wantSell)), "total_sell = %s", got.TotalSell)
			assert.True(t, got.TotalProfit.Equal(dec(tt.wantProfit)), "total_profit = %s", got.TotalProfit)
		})
	}
}

func TestGetSummaryCombinesInventoryAndSales(t *testing.T) {
	invRepo := newFakeInventoryRepo()
	salesRepo := newFakeSalesRepo()
	svc := NewReportService(invRepo, salesRepo)

	for _, it := range []models.InventoryItem{
		{CompanyID: 1, ItemType: models.ItemTypePhone, Cost: dec("100"), Sell: dec("150"), Qty: 5},
		{CompanyID: 1, ItemType: models.ItemTypeLaptop, Cost: dec("400"), Sell: dec("550"), Qty: 3},
		{CompanyID: 2, ItemType: models.ItemTypePhone, Cost: dec("1"), Sell: dec("2"), Qty: 100},
	} {
		item := it
		_, err := invRepo.CreateItem(nil, &item)
		require.NoError(t, err)
	}

	for _, profit := range []string{"100", "-25"} {
		_, err := salesRepo.CreateSale(nil, &models.SaleRecord{CompanyID: 1, ItemType: models.ItemTypePhone, SoldQty: 1, Profit: dec(profit)})
		require.NoError(t, err)
	}

	summary, err := svc.GetSummary(adminActor())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 8, summary.UnitsOnHand)
	assert.True(t, summary.TotalCost.Equal(dec("1700")), "total_cost = %s", summary.TotalCost)
	assert.True(t, summary.TotalSell.Equal(dec("2400")), "total_sell = %s", summary.TotalSell)
	assert.True(t, summary.TotalProfit.Equal(dec("700")), "total_profit = %s", summary.TotalProfit)
	assert.Equal(t, 2, summary.SaleCount)
	assert.True(t, summary.RealizedProfit.Equal(dec("75")), "realized_profit = %s", summary.RealizedProfit)
}

func TestGetSummaryRequiresCompany(t *testing.T) {
	svc := NewReportService(newFakeInventoryRepo(), newFakeSalesRepo())
	_, err := svc.GetSummary(models.Actor{UserID: 9})
	assert.ErrorIs(t, err, ErrCompanyUnresolved)
}
