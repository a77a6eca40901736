package usecase

import (
	"context"
	"fmt"
	"strconv"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"

	"go.uber.org/zap"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type DashboardService interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
	Notifications(ctx context.Context) ([]entity.Notification, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  Clock
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger, now Clock) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log,
		now:  now,
	}
}

func (ds *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := ds.repo.Dashboard.Stats(ctx)
	if err != nil {
		return nil, storageErr("dashboard stats", err)
	}
	return stats, nil
}

// Notifications derives alerts from the current data: sick animals, items
// at or below their reorder threshold, and employees awaiting approval.
// Nothing is stored, so an alert disappears once its cause is fixed.
func (ds *dashboardService) Notifications(ctx context.Context) ([]entity.Notification, error) {
	timestamp := ds.now().UTC().Format(timestampLayout)

	animals, err := ds.repo.Animal.FindUnhealthy(ctx)
	if err != nil {
		return nil, storageErr("health alerts", err)
	}
	items, err := ds.repo.Inventory.FindLowStock(ctx)
	if err != nil {
		return nil, storageErr("stock alerts", err)
	}
	pending, err := ds.repo.Employee.FindByStatus(ctx, entity.EmployeePending)
	if err != nil {
		return nil, storageErr("employee requests", err)
	}

	notifications := make([]entity.Notification, 0, len(animals)+len(items)+len(pending))

	for _, a := range animals {
		notifications = append(notifications, entity.Notification{
			ID:        "health-" + a.ID,
			Type:      entity.NotificationHealth,
			Title:     "Health Alert",
			Message:   fmt.Sprintf("%s (%s) is %s", a.Name, a.Species, a.HealthStatus),
			Severity:  entity.SeverityCritical,
			Timestamp: timestamp,
			Link:      "/staff/medical-checks?animalId=" + a.ID,
			Metadata:  entity.NotificationMeta{EntityID: a.ID, EntityType: "Animal"},
		})
	}

	for _, item := range items {
		notifications = append(notifications, entity.Notification{
			ID:        "stock-" + item.ID,
			Type:      entity.NotificationStock,
			Title:     "Low Stock Alert",
			Message:   fmt.Sprintf("%s: Only %s %s remaining", item.Name, strconv.FormatFloat(item.Quantity, 'f', -1, 64), item.Unit),
			Severity:  entity.SeverityWarning,
			Timestamp: timestamp,
			Metadata:  entity.NotificationMeta{EntityID: item.ID, EntityType: "Inventory"},
		})
	}

	for _, e := range pending {
		notifications = append(notifications, entity.Notification{
			ID:        "emp-req-" + e.ID,
			Type:      entity.NotificationSystem,
			Title:     "New Employee Request",
			Message:   e.Name + " has requested to join as employee.",
			Severity:  entity.SeverityInfo,
			Timestamp: timestamp,
			Link:      "/employees",
			Metadata:  entity.NotificationMeta{EntityID: e.ID, EntityType: "Employee"},
		})
	}

	return notifications, nil
}
