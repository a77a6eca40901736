package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	FindAll(ctx context.Context) ([]*entity.InventoryItem, error)
	FindLowStock(ctx context.Context) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

type inventoryRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewInventoryRepository(db database.DBTX, log *zap.Logger) InventoryRepository {
	return &inventoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inventory")),
	}
}

const inventorySelect = `SELECT id, name, category, quantity, unit, min_threshold, expiry_date, supplier FROM inventory`

func (r *inventoryRepository) Create(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, name, category, quantity, unit, min_threshold, expiry_date, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	return execOne(ctx, r.db, r.log, "create", "inventory item", i.ID, query,
		i.ID, i.Name, i.Category, i.Quantity, i.Unit, i.MinThreshold, i.ExpiryDate, i.Supplier)
}

func (r *inventoryRepository) FindAll(ctx context.Context) ([]*entity.InventoryItem, error) {
	return collect[entity.InventoryItem](ctx, r.db, r.log, "inventory", inventorySelect+` ORDER BY name`)
}

// FindLowStock returns items at or below their minimum threshold.
func (r *inventoryRepository) FindLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	return collect[entity.InventoryItem](ctx, r.db, r.log, "low stock items",
		inventorySelect+` WHERE quantity <= min_threshold ORDER BY name`)
}

func (r *inventoryRepository) Update(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		UPDATE inventory
		SET name = $2, category = $3, quantity = $4, unit = $5,
		    min_threshold = $6, expiry_date = $7, supplier = $8
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "inventory item", i.ID, query,
		i.ID, i.Name, i.Category, i.Quantity, i.Unit, i.MinThreshold, i.ExpiryDate, i.Supplier)
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "inventory item", id, `DELETE FROM inventory WHERE id = $1`, id)
}
