package adaptor

import (
	"net/http"

	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves list, create, update and delete for one resource.
type CatalogHandler[R any, E any] struct {
	what    string
	service usecase.CatalogService[R, E]
	log     *zap.Logger
}

func NewCatalogHandler[R any, E any](what string, service usecase.CatalogService[R, E], log *zap.Logger) *CatalogHandler[R, E] {
	return &CatalogHandler[R, E]{
		what:    what,
		service: service,
		log:     log.With(zap.String("handler", what)),
	}
}

func (h *CatalogHandler[R, E]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list "+h.what, "Failed to fetch "+h.what+"s")
		return
	}
	utils.ResponseSuccess(w, items)
}

func (h *CatalogHandler[R, E]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create "+h.what, "Failed to add "+h.what)
		return
	}
	utils.ResponseSuccess(w, item)
}

func (h *CatalogHandler[R, E]) Update(w http.ResponseWriter, r *http.Request) {
	var req R
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update "+h.what, "Failed to update "+h.what)
		return
	}
	utils.ResponseSuccess(w, item)
}

func (h *CatalogHandler[R, E]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete "+h.what, "Failed to delete "+h.what)
		return
	}
	utils.ResponseOK(w, nil)
}
