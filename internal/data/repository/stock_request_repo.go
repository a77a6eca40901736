package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type StockRequestRepository interface {
	Create(ctx context.Context, req *entity.StockRequest) error
	FindByEmployee(ctx context.Context, employeeID string) ([]*entity.StockRequest, error)
}

type stockRequestRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewStockRequestRepository(db database.DBTX, log *zap.Logger) StockRequestRepository {
	return &stockRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "stock_request")),
	}
}

func (r *stockRequestRepository) Create(ctx context.Context, s *entity.StockRequest) error {
	query := `
		INSERT INTO stock_requests (id, employee_id, item_name, quantity, unit, reason, status, request_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	return execOne(ctx, r.db, r.log, "create", "stock request", s.ID, query,
		s.ID, s.EmployeeID, s.ItemName, s.Quantity, s.Unit, s.Reason, s.Status, s.RequestDate)
}

func (r *stockRequestRepository) FindByEmployee(ctx context.Context, employeeID string) ([]*entity.StockRequest, error) {
	return collect[entity.StockRequest](ctx, r.db, r.log, "stock requests",
		`SELECT id, employee_id, item_name, quantity, unit, reason, status, request_date
		 FROM stock_requests WHERE employee_id = $1 ORDER BY request_date DESC`, employeeID)
}
