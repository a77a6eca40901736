package wire

import (
	"zoo-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	r.Get("/api/dashboard/stats", dashboardHandler.Stats)
	r.Get("/api/dashboard/notifications", dashboardHandler.Notifications)
	r.Get("/api/zoo-info", dashboardHandler.ZooInfo)
}
