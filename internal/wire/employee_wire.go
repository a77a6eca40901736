package wire

import (
	"zoo-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEmployee(r chi.Router, employeeHandler *adaptor.EmployeeHandler) {
	r.Route("/api/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.List)
		r.Post("/", employeeHandler.Create)
		r.Get("/{id}", employeeHandler.Get)
		r.Put("/{id}", employeeHandler.Update)
		r.Delete("/{id}", employeeHandler.Delete)
		r.Put("/{id}/profile", employeeHandler.UpdateProfile)
	})

	r.Get("/api/salaries", employeeHandler.Salaries)
}
