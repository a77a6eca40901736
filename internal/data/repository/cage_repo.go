package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type CageRepository interface {
	Create(ctx context.Context, cage *entity.Cage) error
	FindAll(ctx context.Context) ([]*entity.Cage, error)
	Update(ctx context.Context, cage *entity.Cage) error
	Delete(ctx context.Context, id string) error
}

type cageRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewCageRepository(db database.DBTX, log *zap.Logger) CageRepository {
	return &cageRepository{
		db:  db,
		log: log.With(zap.String("repository", "cage")),
	}
}

func (r *cageRepository) Create(ctx context.Context, c *entity.Cage) error {
	query := `
		INSERT INTO cages (id, name, type, location, capacity, occupancy, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return execOne(ctx, r.db, r.log, "create", "cage", c.ID, query,
		c.ID, c.Name, c.Type, c.Location, c.Capacity, c.Occupancy, c.Status)
}

func (r *cageRepository) FindAll(ctx context.Context) ([]*entity.Cage, error) {
	return collect[entity.Cage](ctx, r.db, r.log, "cages",
		`SELECT id, name, type, location, capacity, occupancy, status FROM cages ORDER BY name`)
}

func (r *cageRepository) Update(ctx context.Context, c *entity.Cage) error {
	query := `
		UPDATE cages
		SET name = $2, type = $3, location = $4, capacity = $5, occupancy = $6, status = $7
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "cage", c.ID, query,
		c.ID, c.Name, c.Type, c.Location, c.Capacity, c.Occupancy, c.Status)
}

func (r *cageRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "cage", id, `DELETE FROM cages WHERE id = $1`, id)
}
