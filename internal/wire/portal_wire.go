package wire

import (
	"zoo-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePortal(r chi.Router, portalHandler *adaptor.PortalHandler) {
	// ==================== ATTENDANCE ====================
	r.Route("/api/attendance", func(r chi.Router) {
		r.Get("/", portalHandler.AllAttendance) // ?date=YYYY-MM-DD
		r.Post("/check-in", portalHandler.CheckIn)
		r.Post("/check-out", portalHandler.CheckOut)
		r.Get("/{employeeId}", portalHandler.AttendanceHistory)
	})

	// ==================== JOBS ====================
	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", portalHandler.AllJobs)
		r.Post("/", portalHandler.AssignJob)
		r.Get("/{employeeId}", portalHandler.EmployeeJobs)
		r.Put("/{id}/status", portalHandler.UpdateJobStatus)
	})

	// ==================== STOCK REQUESTS ====================
	r.Post("/api/stock-requests", portalHandler.CreateStockRequest)
	r.Get("/api/stock-requests/my-requests/{employeeId}", portalHandler.MyStockRequests)
}
