package repository

import (
	"context"
	"errors"
	"fmt"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VisitorRepository interface {
	Create(ctx context.Context, visitor *entity.Visitor) error
	FindAll(ctx context.Context) ([]*entity.Visitor, error)
	FindIDByEmail(ctx context.Context, email string) (string, error)
	UpdateContact(ctx context.Context, id, name string, phone *string) error
}

type visitorRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewVisitorRepository(db database.DBTX, log *zap.Logger) VisitorRepository {
	return &visitorRepository{
		db:  db,
		log: log.With(zap.String("repository", "visitor")),
	}
}

func (r *visitorRepository) Create(ctx context.Context, v *entity.Visitor) error {
	query := `
		INSERT INTO visitors (id, name, email, phone, registration_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	return execOne(ctx, r.db, r.log, "create", "visitor", v.ID, query,
		v.ID, v.Name, v.Email, v.Phone, v.RegistrationDate)
}

func (r *visitorRepository) FindAll(ctx context.Context) ([]*entity.Visitor, error) {
	return collect[entity.Visitor](ctx, r.db, r.log, "visitors",
		`SELECT id, name, email, phone, registration_date FROM visitors ORDER BY registration_date DESC`)
}

// FindIDByEmail returns "" when no visitor has the email.
func (r *visitorRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM visitors WHERE email = $1 LIMIT 1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.log.Error("Failed to find visitor by email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("find visitor by email %s: %w", email, err)
	}
	return id, nil
}

func (r *visitorRepository) UpdateContact(ctx context.Context, id, name string, phone *string) error {
	return execOne(ctx, r.db, r.log, "update", "visitor", id,
		`UPDATE visitors SET name = $2, phone = $3 WHERE id = $1`, id, name, phone)
}
