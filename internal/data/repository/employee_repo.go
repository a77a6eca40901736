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

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id string) (*entity.Employee, error)
	FindAll(ctx context.Context) ([]*entity.Employee, error)
	FindByStatus(ctx context.Context, status entity.EmployeeStatus) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	UpdateContact(ctx context.Context, id, phone, email string) error
	Delete(ctx context.Context, id string) error
}

type employeeRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewEmployeeRepository(db database.DBTX, log *zap.Logger) EmployeeRepository {
	return &employeeRepository{
		db:  db,
		log: log.With(zap.String("repository", "employee")),
	}
}

const employeeColumns = `id, name, email, role, phone, salary, join_date, status`

func (r *employeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, role, phone, salary, join_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		e.ID,
		e.Name,
		e.Email,
		e.Role,
		e.Phone,
		e.Salary,
		e.JoinDate,
		e.Status,
	)
	if err != nil {
		r.log.Error("Failed to create employee",
			zap.Error(err),
			zap.String("employee_id", e.ID),
			zap.String("email", e.Email),
		)
		return fmt.Errorf("create employee %s: %w", e.ID, classify(err))
	}

	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e entity.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Phone,
		&e.Salary,
		&e.JoinDate,
		&e.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find employee by ID",
			zap.Error(err),
			zap.String("employee_id", id),
		)
		return nil, fmt.Errorf("find employee by ID %s: %w", id, err)
	}

	return &e, nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	return collect[entity.Employee](ctx, r.db, r.log, "employees",
		`SELECT `+employeeColumns+` FROM employees ORDER BY name`)
}

func (r *employeeRepository) FindByStatus(ctx context.Context, status entity.EmployeeStatus) ([]*entity.Employee, error) {
	return collect[entity.Employee](ctx, r.db, r.log, "employees",
		`SELECT `+employeeColumns+` FROM employees WHERE status = $1 ORDER BY name`, status)
}

func (r *employeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, email = $3, role = $4, phone = $5,
		    salary = $6, join_date = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		e.ID,
		e.Name,
		e.Email,
		e.Role,
		e.Phone,
		e.Salary,
		e.JoinDate,
		e.Status,
	)
	if err != nil {
		r.log.Error("Failed to update employee",
			zap.Error(err),
			zap.String("employee_id", e.ID),
		)
		return fmt.Errorf("update employee %s: %w", e.ID, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", e.ID, ErrNotFound)
	}

	return nil
}

// UpdateContact changes only phone and email, the fields an employee may
// edit on their own profile. An unknown id updates nothing and is not an error.
func (r *employeeRepository) UpdateContact(ctx context.Context, id, phone, email string) error {
	query := `UPDATE employees SET phone = $2, email = $3 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, phone, email); err != nil {
		r.log.Error("Failed to update employee contact",
			zap.Error(err),
			zap.String("employee_id", id),
		)
		return fmt.Errorf("update contact of employee %s: %w", id, classify(err))
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete employee",
			zap.Error(err),
			zap.String("employee_id", id),
		)
		return fmt.Errorf("delete employee %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}

	r.log.Info("Employee deleted", zap.String("employee_id", id))
	return nil
}
