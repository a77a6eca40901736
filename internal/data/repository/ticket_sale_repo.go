package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type TicketSaleRepository interface {
	Create(ctx context.Context, sale *entity.TicketSale) error
	FindAll(ctx context.Context) ([]*entity.TicketSale, error)
}

type ticketSaleRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewTicketSaleRepository(db database.DBTX, log *zap.Logger) TicketSaleRepository {
	return &ticketSaleRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_sale")),
	}
}

func (r *ticketSaleRepository) Create(ctx context.Context, s *entity.TicketSale) error {
	query := `
		INSERT INTO ticket_sales (id, ticket_id, quantity, total_amount, date, visitor_name, visitor_email, visitor_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	return execOne(ctx, r.db, r.log, "create", "ticket sale", s.ID, query,
		s.ID, s.TicketID, s.Quantity, s.TotalAmount, s.Date, s.VisitorName, s.VisitorEmail, s.VisitorPhone)
}

func (r *ticketSaleRepository) FindAll(ctx context.Context) ([]*entity.TicketSale, error) {
	return collect[entity.TicketSale](ctx, r.db, r.log, "ticket sales",
		`SELECT id, ticket_id, quantity, total_amount, date, visitor_name, visitor_email, visitor_phone
		 FROM ticket_sales ORDER BY date DESC`)
}
