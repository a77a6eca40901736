package usecase

import (
	"context"
	"errors"
	"testing"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_VisitorByDefault(t *testing.T) {
	mock, svc := newTestService(t)
	id := utils.GenerateID("user", fixedNow)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(id, "Ann", "ann@zoo.io", "pw", entity.RoleVisitor).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	resp, err := svc.AuthService.Register(context.Background(), &request.RegisterRequest{
		Name: "Ann", Email: "ann@zoo.io", Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, entity.RoleVisitor, resp.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_EmployeeCandidateCreatesPendingEmployee(t *testing.T) {
	mock, svc := newTestService(t)
	id := utils.GenerateID("user", fixedNow)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(id, "Ann", "ann@zoo.io", "pw", entity.RoleEmployee).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(id, "Ann", "ann@zoo.io", "Staff", "", float64(0), "2024-03-15", entity.EmployeePending).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	resp, err := svc.AuthService.Register(context.Background(), &request.RegisterRequest{
		Name: "Ann", Email: "ann@zoo.io", Password: "pw", Role: "employee",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, resp.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_EmployeeInsertFailureRollsBackUser(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := svc.AuthService.Register(context.Background(), &request.RegisterRequest{
		Name: "Ann", Email: "ann@zoo.io", Password: "pw", Role: "employee",
	})

	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	_, err := svc.AuthService.Register(context.Background(), &request.RegisterRequest{
		Name: "Ann", Email: "ann@zoo.io", Password: "pw",
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_MissingFieldsTouchNothing(t *testing.T) {
	mock, svc := newTestService(t)

	_, err := svc.AuthService.Register(context.Background(), &request.RegisterRequest{Name: "Ann"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: email, password", verr.Message())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	userRow := func(mock pgxmock.PgxPoolIface) {
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("bob@zoo.io").
			WillReturnRows(mock.NewRows([]string{"id", "name", "email", "password", "role"}).
				AddRow("emp-1", "Bob", "bob@zoo.io", "emp123", entity.RoleEmployee))
	}

	t.Run("matching password", func(t *testing.T) {
		mock, svc := newTestService(t)
		userRow(mock)

		resp, err := svc.AuthService.Login(context.Background(), &request.LoginRequest{Email: "bob@zoo.io", Password: "emp123"})

		require.NoError(t, err)
		assert.Equal(t, "emp-1", resp.ID)
		assert.Equal(t, entity.RoleEmployee, resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mock, svc := newTestService(t)
		userRow(mock)

		_, err := svc.AuthService.Login(context.Background(), &request.LoginRequest{Email: "bob@zoo.io", Password: "nope"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mock, svc := newTestService(t)
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("x@zoo.io").
			WillReturnError(pgx.ErrNoRows)

		_, err := svc.AuthService.Login(context.Background(), &request.LoginRequest{Email: "x@zoo.io", Password: "pw"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
