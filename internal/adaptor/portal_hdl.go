package adaptor

import (
	"net/http"

	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PortalHandler serves the employee self-service pages: attendance, job
// assignments and stock requests.
type PortalHandler struct {
	attendance usecase.AttendanceService
	jobs       usecase.JobService
	stock      usecase.StockRequestService
	log        *zap.Logger
}

func NewPortalHandler(attendance usecase.AttendanceService, jobs usecase.JobService, stock usecase.StockRequestService, log *zap.Logger) *PortalHandler {
	return &PortalHandler{
		attendance: attendance,
		jobs:       jobs,
		stock:      stock,
		log:        log.With(zap.String("handler", "portal")),
	}
}

// ==================== ATTENDANCE ====================

func (h *PortalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req request.AttendanceRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	checkIn, err := h.attendance.CheckIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check in", "Check-in failed")
		return
	}
	utils.ResponseOK(w, map[string]any{"checkIn": checkIn})
}

func (h *PortalHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req request.AttendanceRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	checkOut, err := h.attendance.CheckOut(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check out", "Check-out failed")
		return
	}
	utils.ResponseOK(w, map[string]any{"checkOut": checkOut})
}

func (h *PortalHandler) AttendanceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.attendance.History(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		handleServiceError(w, h.log, err, "attendance history", "Failed to fetch attendance")
		return
	}
	utils.ResponseSuccess(w, history)
}

// AllAttendance handles GET /api/attendance?date=YYYY-MM-DD
func (h *PortalHandler) AllAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendance.All(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleServiceError(w, h.log, err, "list attendance", "Failed to fetch attendance")
		return
	}
	utils.ResponseSuccess(w, records)
}

// ==================== JOBS ====================

func (h *PortalHandler) AllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.All(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list jobs", "Failed to fetch jobs")
		return
	}
	utils.ResponseSuccess(w, jobs)
}

func (h *PortalHandler) EmployeeJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ForEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		handleServiceError(w, h.log, err, "list employee jobs", "Failed to fetch jobs")
		return
	}
	utils.ResponseSuccess(w, jobs)
}

func (h *PortalHandler) AssignJob(w http.ResponseWriter, r *http.Request) {
	var req request.AssignJobRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	id, err := h.jobs.Assign(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "assign job", "Failed to assign job")
		return
	}
	utils.ResponseOK(w, map[string]any{"id": id})
}

func (h *PortalHandler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req request.JobStatusRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	if err := h.jobs.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update job status", "Failed to update job")
		return
	}
	utils.ResponseOK(w, nil)
}

// ==================== STOCK REQUESTS ====================

func (h *PortalHandler) CreateStockRequest(w http.ResponseWriter, r *http.Request) {
	var req request.StockRequestRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	id, err := h.stock.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create stock request", "Failed to create request")
		return
	}
	utils.ResponseOK(w, map[string]any{"id": id})
}

func (h *PortalHandler) MyStockRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.stock.ForEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		handleServiceError(w, h.log, err, "list stock requests", "Failed to fetch requests")
		return
	}
	utils.ResponseSuccess(w, requests)
}
