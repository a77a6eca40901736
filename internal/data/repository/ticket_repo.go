package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindAll(ctx context.Context) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id string) error
}

type ticketRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewTicketRepository(db database.DBTX, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, type, price, description, start_date, discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	return execOne(ctx, r.db, r.log, "create", "ticket", t.ID, query,
		t.ID, t.Type, t.Price, t.Description, t.StartDate, t.DiscountPercentage)
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	return collect[entity.Ticket](ctx, r.db, r.log, "tickets",
		`SELECT id, type, price, description, start_date, discount_percentage FROM tickets ORDER BY start_date DESC`)
}

func (r *ticketRepository) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET type = $2, price = $3, description = $4, start_date = $5, discount_percentage = $6
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "ticket", t.ID, query,
		t.ID, t.Type, t.Price, t.Description, t.StartDate, t.DiscountPercentage)
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "ticket", id, `DELETE FROM tickets WHERE id = $1`, id)
}
