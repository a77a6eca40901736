package usecase

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

type StockRequestService interface {
	Create(ctx context.Context, req *request.StockRequestRequest) (string, error)
	ForEmployee(ctx context.Context, employeeID string) ([]*entity.StockRequest, error)
}

type stockRequestService struct {
	stockRepo repository.StockRequestRepository
	log       *zap.Logger
	now       Clock
}

func NewStockRequestService(stockRepo repository.StockRequestRepository, log *zap.Logger, now Clock) StockRequestService {
	return &stockRequestService{
		stockRepo: stockRepo,
		log:       log,
		now:       now,
	}
}

func (ss *stockRequestService) Create(ctx context.Context, req *request.StockRequestRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	now := ss.now()
	stockReq := &entity.StockRequest{
		ID:          utils.GenerateID("req", now),
		EmployeeID:  req.EmployeeID,
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Reason:      req.Reason,
		Status:      entity.StockRequestPending,
		RequestDate: utils.FormatDate(now),
	}
	if err := ss.stockRepo.Create(ctx, stockReq); err != nil {
		return "", storageErr("create stock request", err)
	}
	return stockReq.ID, nil
}

func (ss *stockRequestService) ForEmployee(ctx context.Context, employeeID string) ([]*entity.StockRequest, error) {
	requests, err := ss.stockRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageErr("list stock requests", err)
	}
	return requests, nil
}
