package repository

import (
	"context"
	"fmt"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewDashboardRepository(db database.DBTX, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

// Stats counts animals, employees and cages and sums ticket revenue.
func (r *dashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM animals),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM cages),
			(SELECT COALESCE(SUM(total_amount), 0) FROM ticket_sales)
	`

	var stats entity.DashboardStats
	if err := r.db.QueryRow(ctx, query).Scan(
		&stats.Animals,
		&stats.Employees,
		&stats.Cages,
		&stats.Revenue,
	); err != nil {
		r.log.Error("Failed to compute dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &stats, nil
}
