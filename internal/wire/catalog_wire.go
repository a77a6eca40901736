package wire

import (
	"net/http"

	"zoo-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// crudRoutes is the handler set every catalog resource exposes.
type crudRoutes interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func wireCatalog(r chi.Router, handler *adaptor.Handler) {
	resources := map[string]crudRoutes{
		"/api/animals":        handler.Animal,
		"/api/cages":          handler.Cage,
		"/api/doctors":        handler.Doctor,
		"/api/events":         handler.Event,
		"/api/tickets":        handler.Ticket,
		"/api/inventory":      handler.Inventory,
		"/api/medical-checks": handler.MedicalCheck,
		"/api/vaccinations":   handler.Vaccination,
	}

	for pattern, h := range resources {
		r.Route(pattern, func(r chi.Router) {
			r.Get("/", h.List)       // GET    <pattern>
			r.Post("/", h.Create)    // POST   <pattern>
			r.Put("/{id}", h.Update) // PUT    <pattern>/{id}
			r.Delete("/{id}", h.Delete)
		})
	}
}
