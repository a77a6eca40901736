package wire

import (
	"zoo-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSales(r chi.Router, salesHandler *adaptor.SalesHandler) {
	r.Get("/api/ticket-sales", salesHandler.ListSales)
	r.Post("/api/ticket-sales", salesHandler.CreateSale)

	r.Get("/api/visitors", salesHandler.ListVisitors)
	r.Post("/api/visitors", salesHandler.CreateVisitor)
}
