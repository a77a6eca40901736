package usecase

import (
	"context"
	"testing"

	"zoo-admin/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_DerivedFromCurrentState(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery("FROM animals").
		WithArgs(entity.HealthHealthy).
		WillReturnRows(mock.NewRows([]string{"id", "name", "species", "health_status"}).
			AddRow("a-1", "Leo", "Lion", "Sick"))
	mock.ExpectQuery("FROM inventory").
		WillReturnRows(mock.NewRows([]string{"id", "name", "quantity", "unit"}).
			AddRow("i-1", "Hay", float64(3), "bales"))
	mock.ExpectQuery("FROM employees WHERE status").
		WithArgs(entity.EmployeePending).
		WillReturnRows(mock.NewRows(employeeCols).
			AddRow("user-7", "Dana", "dana@zoo.io", "Staff", "", float64(0), "2024-03-14", entity.EmployeePending))

	notifications, err := svc.DashboardService.Notifications(context.Background())

	require.NoError(t, err)
	require.Len(t, notifications, 3)

	health := notifications[0]
	assert.Equal(t, "health-a-1", health.ID)
	assert.Equal(t, entity.SeverityCritical, health.Severity)
	assert.Equal(t, "Leo (Lion) is Sick", health.Message)
	assert.Equal(t, "/staff/medical-checks?animalId=a-1", health.Link)
	assert.Equal(t, "2024-03-15T09:30:00.000Z", health.Timestamp)

	stock := notifications[1]
	assert.Equal(t, "stock-i-1", stock.ID)
	assert.Equal(t, entity.SeverityWarning, stock.Severity)
	assert.Equal(t, "Hay: Only 3 bales remaining", stock.Message)
	assert.Empty(t, stock.Link)

	request := notifications[2]
	assert.Equal(t, "emp-req-user-7", request.ID)
	assert.Equal(t, entity.NotificationSystem, request.Type)
	assert.Equal(t, entity.SeverityInfo, request.Severity)
	assert.Equal(t, "Dana has requested to join as employee.", request.Message)
	assert.Equal(t, "Employee", request.Metadata.EntityType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotifications_NothingToReport(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery("FROM animals").
		WithArgs(entity.HealthHealthy).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectQuery("FROM inventory").
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectQuery("FROM employees").
		WithArgs(entity.EmployeePending).
		WillReturnRows(mock.NewRows(employeeCols))

	notifications, err := svc.DashboardService.Notifications(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

func TestStats(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(mock.NewRows([]string{"animals", "employees", "cages", "revenue"}).
			AddRow(int64(12), int64(5), int64(4), float64(250.5)))

	stats, err := svc.DashboardService.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{Animals: 12, Employees: 5, Cages: 4, Revenue: 250.5}, stats)
}
