package adaptor

import (
	"net/http"

	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/dto/response"
	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

// SalesHandler covers the box office: ticket sales and the visitor directory.
type SalesHandler struct {
	sales    usecase.TicketSaleService
	visitors usecase.VisitorService
	log      *zap.Logger
}

func NewSalesHandler(sales usecase.TicketSaleService, visitors usecase.VisitorService, log *zap.Logger) *SalesHandler {
	return &SalesHandler{
		sales:    sales,
		visitors: visitors,
		log:      log.With(zap.String("handler", "sales")),
	}
}

func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list ticket sales", "Failed to fetch ticket sales")
		return
	}
	utils.ResponseSuccess(w, sales)
}

// CreateSale handles POST /api/ticket-sales
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req request.TicketSaleRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	sale, err := h.sales.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket sale", "Failed to add ticket sale")
		return
	}
	utils.ResponseSuccess(w, response.TicketSaleResponse{Success: true, TicketSale: sale})
}

func (h *SalesHandler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.visitors.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list visitors", "Failed to fetch visitors")
		return
	}
	utils.ResponseSuccess(w, visitors)
}

func (h *SalesHandler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var req request.VisitorRequest
	if _, ok := decodeBody(w, r, &req); !ok {
		return
	}

	visitor, err := h.visitors.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create visitor", "Failed to add visitor")
		return
	}
	utils.ResponseSuccess(w, visitor)
}
