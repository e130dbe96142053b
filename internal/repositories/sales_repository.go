package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"inventory_pos_backend/internal/models"

	"github.com/shopspring/decimal"
)

// SalesRepository defines the interface for sale record database operations.
// Sale rows are append-only: the ledger never mutates or deletes them.
type SalesRepository interface {
	CreateSale(executor SQLExecutor, sale *models.SaleRecord) (int64, error)
	GetSales(companyID int64) ([]models.SaleRecord, error)
	GetSalesSummary(companyID int64) (count int, realizedProfit decimal.Decimal, err error)
}

type salesRepository struct {
	db *sql.DB
}

// NewSalesRepository creates a new instance of SalesRepository.
func NewSalesRepository(db *sql.DB) SalesRepository {
	return &salesRepository{db: db}
}

const saleColumns = `id, company_id, item_id, item_type, item_sku, description, serial_or_imei,
	sold_qty, sold_price, cost_at_sale, profit, sold_at, sold_by`

func (r *salesRepository) CreateSale(executor SQLExecutor, sale *models.SaleRecord) (int64, error) {
	query := `INSERT INTO inventory_sales
	          (company_id, item_id, item_type, item_sku, description, serial_or_imei,
	           sold_qty, sold_price, cost_at_sale, profit, sold_at, sold_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id, sold_at`

	err := executor.QueryRow(query,
		sale.CompanyID, sale.ItemID, sale.ItemType, sale.ItemSKU, sale.Description, sale.SerialOrIMEI,
		sale.SoldQty, sale.SoldPrice, sale.CostAtSale, sale.Profit, time.Now(), sale.SoldBy,
	).Scan(&sale.ID, &sale.SoldAt)

	if err != nil {
		return 0, fmt.Errorf("%w: creating sale record: %v", ErrDatabaseError, err)
	}
	return sale.ID, nil
}

func (r *salesRepository) GetSales(companyID int64) ([]models.SaleRecord, error) {
	sales := []models.SaleRecord{}
	query := `SELECT ` + saleColumns + ` FROM inventory_sales WHERE company_id = $1 ORDER BY sold_at DESC`

	rows, err := r.db.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting sale records: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var sale models.SaleRecord
		if err := rows.Scan(
			&sale.ID, &sale.CompanyID, &sale.ItemID, &sale.ItemType, &sale.ItemSKU,
			&sale.Description, &sale.SerialOrIMEI, &sale.SoldQty, &sale.SoldPrice,
			&sale.CostAtSale, &sale.Profit, &sale.SoldAt, &sale.SoldBy,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning sale record: %v", ErrDatabaseError, err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale records: %v", ErrDatabaseError, err)
	}
	return sales, nil
}

// GetSalesSummary returns the sale count and the sum of stored profits.
// Profit is read back, never recomputed, so later item edits cannot move it.
func (r *salesRepository) GetSalesSummary(companyID int64) (int, decimal.Decimal, error) {
	var count int
	var profit decimal.Decimal
	query := `SELECT COUNT(*), COALESCE(SUM(profit), 0) FROM inventory_sales WHERE company_id = $1`
	err := r.db.QueryRow(query, companyID).Scan(&count, &profit)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: summarizing sales for company %d: %v", ErrDatabaseError, companyID, err)
	}
	return count, profit, nil
}
