package response

import "zoo-admin/internal/data/entity"

type TicketSaleResponse struct {
	Success bool `json:"success"`
	*entity.TicketSale
}
