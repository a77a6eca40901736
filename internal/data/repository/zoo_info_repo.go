package repository

import (
	"context"
	"errors"
	"fmt"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ZooInfoRepository interface {
	Get(ctx context.Context) (*entity.ZooInfo, error)
}

type zooInfoRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewZooInfoRepository(db database.DBTX, log *zap.Logger) ZooInfoRepository {
	return &zooInfoRepository{db: db, log: log.With(zap.String("repository", "zoo_info"))}
}

// Get returns the first zoo_info row, or nil when the table is empty.
func (r *zooInfoRepository) Get(ctx context.Context) (*entity.ZooInfo, error) {
	query := `
		SELECT zoo_id, name, location, description, capacity, start_time, end_time
		FROM zoo_info
		LIMIT 1
	`

	var z entity.ZooInfo
	err := r.db.QueryRow(ctx, query).Scan(
		&z.ZooID,
		&z.Name,
		&z.Location,
		&z.Description,
		&z.Capacity,
		&z.StartTime,
		&z.EndTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get zoo info", zap.Error(err))
		return nil, fmt.Errorf("get zoo info: %w", err)
	}

	return &z, nil
}
