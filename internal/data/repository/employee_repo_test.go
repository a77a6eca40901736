package repository

import (
	"context"
	"testing"

	"zoo-admin/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeCols = []string{"id", "name", "email", "role", "phone", "salary", "join_date", "status"}

func TestEmployeeRepository_FindByStatus(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := mock.NewRows(employeeCols).
		AddRow("user-1", "Ann", "ann@zoo.io", "Staff", "", float64(0), "2024-03-15", entity.EmployeePending).
		AddRow("user-2", "Cat", "cat@zoo.io", "Staff", "", float64(0), "2024-03-16", entity.EmployeePending)
	mock.ExpectQuery("FROM employees WHERE status").
		WithArgs(entity.EmployeePending).
		WillReturnRows(rows)

	employees, err := repo.Employee.FindByStatus(context.Background(), entity.EmployeePending)

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Cat", employees[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_UpdateMissingRow(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec("UPDATE employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Employee.Update(context.Background(), &entity.Employee{ID: "missing"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeRepository_DeleteRemovesRow(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs("emp-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Employee.Delete(context.Background(), "emp-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollect_EmptyResultIsEmptySlice(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery("FROM cages").
		WillReturnRows(mock.NewRows([]string{"id", "name"}))

	cages, err := repo.Cage.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cages)
	assert.Empty(t, cages)
}

func TestEmployeeRepository_FindByStatusPartialColumns(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery("FROM employees WHERE status").
		WithArgs(entity.EmployeePending).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("user-7", "Dana"))

	employees, err := repo.Employee.FindByStatus(context.Background(), entity.EmployeePending)

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Dana", employees[0].Name)
	assert.Empty(t, employees[0].Email)
}

func TestEmployeeRepository_UpdateContactUnknownIDIsNoop(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec("UPDATE employees SET phone").
		WithArgs("ghost", "555", "ghost@zoo.io").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.Employee.UpdateContact(context.Background(), "ghost", "555", "ghost@zoo.io"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
