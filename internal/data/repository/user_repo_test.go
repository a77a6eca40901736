package repository

import (
	"context"
	"testing"

	"zoo-admin/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("user-2", "Ann", "ann@zoo.io", "pw", entity.RoleVisitor).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.User.Create(context.Background(), &entity.User{
		ID: "user-2", Name: "Ann", Email: "ann@zoo.io", Password: "pw", Role: entity.RoleVisitor,
	})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := mock.NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow("emp-1", "Bob", "bob@zoo.io", "emp123", entity.RoleEmployee)
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("bob@zoo.io").
		WillReturnRows(rows)

	user, err := repo.User.FindByEmail(context.Background(), "bob@zoo.io")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "emp-1", user.ID)
	assert.Equal(t, entity.RoleEmployee, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailMissing(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@zoo.io").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.User.FindByEmail(context.Background(), "nobody@zoo.io")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateIdentityMissingRow(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec("UPDATE users SET name").
		WithArgs("ghost", "Ghost", "ghost@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.User.UpdateIdentity(context.Background(), "ghost", "Ghost", "ghost@zoo.io")

	assert.ErrorIs(t, err, ErrNotFound)
}
