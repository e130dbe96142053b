package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_pos_backend/internal/models"

	"github.com/lib/pq"
)

// InventoryRepository defines the interface for inventory item database
// operations. Every query is scoped by company_id; there is no way to reach
// another tenant's rows through this layer.
type InventoryRepository interface {
	CreateItem(executor SQLExecutor, item *models.InventoryItem) (int64, error)
	GetItemByID(companyID, id int64) (*models.InventoryItem, error)
	GetItemForUpdate(executor SQLExecutor, companyID, id int64) (*models.InventoryItem, error)
	GetItems(companyID int64, search string) ([]models.InventoryItem, error)
	UpdateItem(executor SQLExecutor, item *models.InventoryItem) error
	DeleteItem(executor SQLExecutor, companyID, id int64) error
	DecrementQty(executor SQLExecutor, companyID, itemID int64, qty int) (int, error) // Returns new quantity
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

const itemColumns = `id, company_id, item_type, item_sku, description, serial_or_imei, cost, sell, qty, created_at, created_by`

func scanItem(row interface{ Scan(...interface{}) error }, item *models.InventoryItem) error {
	return row.Scan(
		&item.ID, &item.CompanyID, &item.ItemType, &item.ItemSKU, &item.Description,
		&item.SerialOrIMEI, &item.Cost, &item.Sell, &item.Qty, &item.CreatedAt, &item.CreatedBy,
	)
}

func (r *inventoryRepository) CreateItem(executor SQLExecutor, item *models.InventoryItem) (int64, error) {
	query := `INSERT INTO inventory_items
	          (company_id, item_type, item_sku, description, serial_or_imei, cost, sell, qty, created_at, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		item.CompanyID, item.ItemType, item.ItemSKU, item.Description, item.SerialOrIMEI,
		item.Cost, item.Sell, item.Qty, time.Now(), item.CreatedBy,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: creating inventory item (constraint: %s)", ErrDuplicateKey, pqErr.Constraint)
			}
			if pqErr.Code.Name() == "check_violation" {
				return 0, fmt.Errorf("%w: creating inventory item violates %s: %v", ErrDatabaseError, pqErr.Constraint, err)
			}
		}
		return 0, fmt.Errorf("%w: creating inventory item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *inventoryRepository) GetItemByID(companyID, id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND company_id = $2`
	err := scanItem(r.db.QueryRow(query, id, companyID), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item by ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

// GetItemForUpdate locks the item row for the duration of the surrounding
// transaction. The sale transition reads the cost snapshot through this so a
// concurrent edit cannot slip between the read and the decrement.
func (r *inventoryRepository) GetItemForUpdate(executor SQLExecutor, companyID, id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND company_id = $2 FOR UPDATE`
	err := scanItem(executor.QueryRow(query, id, companyID), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: locking inventory item ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

// GetItems returns the company's items, newest first. A non-empty search term
// does a case-insensitive substring match over SKU, description and serial.
func (r *inventoryRepository) GetItems(companyID int64, search string) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}

	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1`
	args := []interface{}{companyID}
	if search != "" {
		query += ` AND (item_sku ILIKE $2 OR description ILIKE $2 OR serial_or_imei ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InventoryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// UpdateItem overwrites the mutable fields of an item. company_id, created_at
// and created_by are never touched.
func (r *inventoryRepository) UpdateItem(executor SQLExecutor, item *models.InventoryItem) error {
	query := `UPDATE inventory_items SET
	            item_type = $1, item_sku = $2, description = $3, serial_or_imei = $4,
	            cost = $5, sell = $6, qty = $7
	          WHERE id = $8 AND company_id = $9`

	result, err := executor.Exec(query,
		item.ItemType, item.ItemSKU, item.Description, item.SerialOrIMEI,
		item.Cost, item.Sell, item.Qty, item.ID, item.CompanyID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "check_violation" {
			return fmt.Errorf("%w: updating inventory item violates %s: %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return fmt.Errorf("%w: updating inventory item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) DeleteItem(executor SQLExecutor, companyID, id int64) error {
	query := `DELETE FROM inventory_items WHERE id = $1 AND company_id = $2`
	result, err := executor.Exec(query, id, companyID)
	if err != nil {
		return fmt.Errorf("%w: deleting inventory item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementQty subtracts qty units as a single conditional write: the bounds
// check is part of the WHERE clause, so a stale caller snapshot can never
// drive the quantity negative.
func (r *inventoryRepository) DecrementQty(executor SQLExecutor, companyID, itemID int64, qty int) (int, error) {
	var newQty int
	query := `UPDATE inventory_items
	          SET qty = qty - $1
	          WHERE id = $2 AND company_id = $3 AND qty >= $1
	          RETURNING qty`
	err := executor.QueryRow(query, qty, itemID, companyID).Scan(&newQty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the item is gone or it has fewer than qty units left.
			var exists bool
			checkErr := r.db.QueryRow(
				"SELECT EXISTS(SELECT 1 FROM inventory_items WHERE id = $1 AND company_id = $2)",
				itemID, companyID,
			).Scan(&exists)
			if checkErr == nil && !exists {
				return 0, ErrNotFound
			}
			return 0, fmt.Errorf("%w: item ID %d has fewer than %d units", ErrInsufficientStock, itemID, qty)
		}
		return 0, fmt.Errorf("%w: decrementing stock for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return newQty, nil
}
