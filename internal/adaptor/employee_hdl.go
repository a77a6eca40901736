package adaptor

import (
	"net/http"

	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	service usecase.EmployeeService
	log     *zap.Logger
}

func NewEmployeeHandler(service usecase.EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		log:     log.With(zap.String("handler", "employee")),
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list employees", "Failed to fetch employees")
		return
	}
	utils.ResponseSuccess(w, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get employee", "Failed to fetch employee")
		return
	}
	utils.ResponseSuccess(w, employee)
}

// Create handles POST /api/employees. The reply echoes the submitted
// fields with a confirmation message.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.EmployeeRequest
	body, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}

	if _, err := h.service.Create(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create employee", "Failed to add employee")
		return
	}

	body["message"] = "Employee and user account created successfully"
	utils.ResponseSuccess(w, body)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.EmployeeUpdateRequest
	body, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}

	if _, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update employee", "Failed to update employee")
		return
	}

	body["message"] = "Employee updated successfully"
	utils.ResponseSuccess(w, body)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete employee", "Failed to delete employee")
		return
	}
	utils.ResponseOK(w, nil)
}

// UpdateProfile handles PUT /api/employees/{id}/profile
func (h *EmployeeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.ProfileRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	if err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update profile", "Failed to update profile")
		return
	}
	utils.ResponseOK(w, nil)
}

func (h *EmployeeHandler) Salaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.service.Salaries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list salaries", "Failed to fetch salaries")
		return
	}
	utils.ResponseSuccess(w, salaries)
}
