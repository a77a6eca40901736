package usecase

import (
	"context"
	"errors"
	"testing"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/dto/request"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	employeeCols = []string{"id", "name", "email", "role", "phone", "salary", "join_date", "status"}
	userCols     = []string{"id", "name", "email", "password", "role"}
)

func newEmployeeRequest() *request.EmployeeRequest {
	return &request.EmployeeRequest{
		ID:    "emp-1",
		Name:  "Bob",
		Email: "bob@zoo.io",
		Role:  "Keeper",
	}
}

func TestEmployeeCreate_AddsUserAccount(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WithArgs("emp-1", "Bob", "bob@zoo.io", "Keeper", "", float64(0), "2024-03-15", entity.EmployeeActive).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("bob@zoo.io").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("emp-1", "Bob", "bob@zoo.io", "emp123", entity.RoleEmployee).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	employee, err := svc.EmployeeService.Create(context.Background(), newEmployeeRequest())

	require.NoError(t, err)
	assert.Equal(t, entity.EmployeeActive, employee.Status)
	assert.Zero(t, employee.Salary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeCreate_KeepsExistingUserAccount(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("bob@zoo.io").
		WillReturnRows(mock.NewRows(userCols).
			AddRow("user-9", "Bob", "bob@zoo.io", "own-password", entity.RoleVisitor))
	mock.ExpectCommit()

	_, err := svc.EmployeeService.Create(context.Background(), newEmployeeRequest())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeCreate_UserFailureRollsBackEmployee(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("bob@zoo.io").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	_, err := svc.EmployeeService.Create(context.Background(), newEmployeeRequest())

	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeCreate_MissingFields(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.EmployeeService.Create(context.Background(), &request.EmployeeRequest{ID: "emp-1"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: email, name, role", verr.Message())
}

func TestEmployeeUpdate_SyncsUserIdentity(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM employees WHERE id").
		WithArgs("emp-1").
		WillReturnRows(mock.NewRows(employeeCols).
			AddRow("emp-1", "Bob", "bob@zoo.io", "Keeper", "555", float64(36000), "2023-01-01", entity.EmployeeActive))
	mock.ExpectExec("UPDATE employees").
		WithArgs("emp-1", "Robert", "bob@zoo.io", "Keeper", "555", float64(36000), "2023-01-01", entity.EmployeeActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs("emp-1").
		WillReturnRows(mock.NewRows(userCols).
			AddRow("emp-1", "Bob", "bob@zoo.io", "emp123", entity.RoleEmployee))
	mock.ExpectExec("UPDATE users SET name").
		WithArgs("emp-1", "Robert", "bob@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	employee, err := svc.EmployeeService.Update(context.Background(), "emp-1",
		&request.EmployeeUpdateRequest{Name: ptr("Robert")})

	require.NoError(t, err)
	assert.Equal(t, "Robert", employee.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeUpdate_WithoutUserAccount(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM employees WHERE id").
		WithArgs("emp-2").
		WillReturnRows(mock.NewRows(employeeCols).
			AddRow("emp-2", "Cat", "cat@zoo.io", "Vet", "", float64(0), "2023-01-01", entity.EmployeeActive))
	mock.ExpectExec("UPDATE employees").
		WithArgs("emp-2", "Cat", "cat@zoo.io", "Vet", "", float64(0), "2023-01-01", entity.EmployeeInactive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs("emp-2").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectCommit()

	_, err := svc.EmployeeService.Update(context.Background(), "emp-2",
		&request.EmployeeUpdateRequest{Status: ptr("Inactive")})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeUpdate_UnknownEmployee(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM employees WHERE id").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.EmployeeService.Update(context.Background(), "ghost",
		&request.EmployeeUpdateRequest{Name: ptr("Ghost")})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_UserSyncFailureIsIgnored(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectExec("UPDATE employees SET phone").
		WithArgs("emp-1", "555-0101", "new@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE users SET email").
		WithArgs("emp-1", "new@zoo.io").
		WillReturnError(errors.New("users table locked"))

	err := svc.EmployeeService.UpdateProfile(context.Background(), "emp-1",
		&request.ProfileRequest{Phone: "555-0101", Email: "new@zoo.io"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_EmptyEmailSkipsUserSync(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectExec("UPDATE employees SET phone").
		WithArgs("emp-1", "555-0101", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := svc.EmployeeService.UpdateProfile(context.Background(), "emp-1",
		&request.ProfileRequest{Phone: "555-0101"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_UnknownEmployeeStillSucceeds(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectExec("UPDATE employees SET phone").
		WithArgs("ghost", "555-0101", "ghost@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("UPDATE users SET email").
		WithArgs("ghost", "ghost@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := svc.EmployeeService.UpdateProfile(context.Background(), "ghost",
		&request.ProfileRequest{Phone: "555-0101", Email: "ghost@zoo.io"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaries_MonthlyIsRoundedTwelfth(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery("FROM employees").
		WillReturnRows(mock.NewRows(employeeCols).
			AddRow("emp-1", "Bob", "bob@zoo.io", "Keeper", "", float64(50000), "2023-01-01", entity.EmployeeActive))

	salaries, err := svc.EmployeeService.Salaries(context.Background())

	require.NoError(t, err)
	require.Len(t, salaries, 1)
	assert.Equal(t, float64(50000), salaries[0].Annual)
	assert.Equal(t, float64(4167), salaries[0].Monthly)
}
