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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateIdentity(ctx context.Context, id, name, email string) error
	UpdateEmail(ctx context.Context, id, email string) error
}

type userRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewUserRepository(db database.DBTX, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user. A taken email yields ErrDuplicate.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("user_id", user.ID),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, classify(err))
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return ur.findOne(ctx, "id", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "email", email)
}

// findOne returns nil, nil when no row matches.
func (ur *userRepository) findOne(ctx context.Context, column, value string) (*entity.User, error) {
	query := `SELECT id, name, email, password, role FROM users WHERE ` + column + ` = $1`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(column, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", column, value, err)
	}

	return &user, nil
}

// UpdateIdentity copies an employee's name and email onto the login row.
func (ur *userRepository) UpdateIdentity(ctx context.Context, id, name, email string) error {
	query := `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, name, email)
	if err != nil {
		ur.log.Error("Failed to update user identity",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("update user %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	return nil
}

func (ur *userRepository) UpdateEmail(ctx context.Context, id, email string) error {
	query := `UPDATE users SET email = $2 WHERE id = $1`

	if _, err := ur.db.Exec(ctx, query, id, email); err != nil {
		ur.log.Error("Failed to update user email",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("update email of user %s: %w", id, classify(err))
	}

	return nil
}
