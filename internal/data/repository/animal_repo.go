package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	FindAll(ctx context.Context) ([]*entity.Animal, error)
	FindUnhealthy(ctx context.Context) ([]*entity.Animal, error)
	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id string) error
}

type animalRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewAnimalRepository(db database.DBTX, log *zap.Logger) AnimalRepository {
	return &animalRepository{
		db:  db,
		log: log.With(zap.String("repository", "animal")),
	}
}

const animalSelect = `SELECT id, name, species, age, gender, health_status, cage_id, notes FROM animals`

func (r *animalRepository) Create(ctx context.Context, a *entity.Animal) error {
	query := `
		INSERT INTO animals (id, name, species, age, gender, health_status, cage_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	return execOne(ctx, r.db, r.log, "create", "animal", a.ID, query,
		a.ID, a.Name, a.Species, a.Age, a.Gender, a.HealthStatus, a.CageID, a.Notes)
}

func (r *animalRepository) FindAll(ctx context.Context) ([]*entity.Animal, error) {
	return collect[entity.Animal](ctx, r.db, r.log, "animals", animalSelect+` ORDER BY name`)
}

// FindUnhealthy returns every animal whose health status is not Healthy.
func (r *animalRepository) FindUnhealthy(ctx context.Context) ([]*entity.Animal, error) {
	return collect[entity.Animal](ctx, r.db, r.log, "unhealthy animals",
		animalSelect+` WHERE health_status <> $1 ORDER BY name`, entity.HealthHealthy)
}

func (r *animalRepository) Update(ctx context.Context, a *entity.Animal) error {
	query := `
		UPDATE animals
		SET name = $2, species = $3, age = $4, gender = $5,
		    health_status = $6, cage_id = $7, notes = $8
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "animal", a.ID, query,
		a.ID, a.Name, a.Species, a.Age, a.Gender, a.HealthStatus, a.CageID, a.Notes)
}

func (r *animalRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "animal", id, `DELETE FROM animals WHERE id = $1`, id)
}
