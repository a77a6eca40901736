package usecase

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"

	"go.uber.org/zap"
)

type ZooInfoService interface {
	Get(ctx context.Context) (*entity.ZooInfo, error)
}

type zooInfoService struct {
	zooRepo repository.ZooInfoRepository
	log     *zap.Logger
}

func NewZooInfoService(zooRepo repository.ZooInfoRepository, log *zap.Logger) ZooInfoService {
	return &zooInfoService{zooRepo: zooRepo, log: log}
}

func (zs *zooInfoService) Get(ctx context.Context) (*entity.ZooInfo, error) {
	info, err := zs.zooRepo.Get(ctx)
	if err != nil {
		return nil, storageErr("zoo info", err)
	}
	if info == nil {
		return nil, ErrNotFound
	}
	return info, nil
}
