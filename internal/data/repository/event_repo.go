package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewEventRepository(db database.DBTX, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, date, time, location, capacity, registered_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	return execOne(ctx, r.db, r.log, "create", "event", e.ID, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Location, e.Capacity, e.RegisteredCount, e.Status)
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	return collect[entity.Event](ctx, r.db, r.log, "events",
		`SELECT id, title, description, date, time, location, capacity, registered_count, status
		 FROM events ORDER BY date, time`)
}

func (r *eventRepository) Update(ctx context.Context, e *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, date = $4, time = $5,
		    location = $6, capacity = $7, registered_count = $8, status = $9
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "event", e.ID, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Location, e.Capacity, e.RegisteredCount, e.Status)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "event", id, `DELETE FROM events WHERE id = $1`, id)
}
