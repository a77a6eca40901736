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

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	ExistsForDate(ctx context.Context, employeeID, date string) (bool, error)
	SetCheckOut(ctx context.Context, employeeID, date, checkOut string) error
	FindByEmployee(ctx context.Context, employeeID string) ([]*entity.Attendance, error)
	FindAll(ctx context.Context, date string) ([]*entity.Attendance, error)
}

type attendanceRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewAttendanceRepository(db database.DBTX, log *zap.Logger) AttendanceRepository {
	return &attendanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "attendance")),
	}
}

func (r *attendanceRepository) Create(ctx context.Context, a *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	return execOne(ctx, r.db, r.log, "create", "attendance", a.ID, query,
		a.ID, a.EmployeeID, a.Date, a.CheckIn, a.Status)
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, employeeID, date string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2 LIMIT 1`,
		employeeID, date,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check attendance",
			zap.Error(err),
			zap.String("employee_id", employeeID),
			zap.String("date", date),
		)
		return false, fmt.Errorf("check attendance of %s on %s: %w", employeeID, date, err)
	}
	return true, nil
}

// SetCheckOut records the check-out time. Having no check-in row for the
// day is not an error.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, employeeID, date, checkOut string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE attendance SET check_out = $3 WHERE employee_id = $1 AND date = $2`,
		employeeID, date, checkOut,
	)
	if err != nil {
		r.log.Error("Failed to check out",
			zap.Error(err),
			zap.String("employee_id", employeeID),
		)
		return fmt.Errorf("check out %s on %s: %w", employeeID, date, err)
	}
	return nil
}

func (r *attendanceRepository) FindByEmployee(ctx context.Context, employeeID string) ([]*entity.Attendance, error) {
	return collect[entity.Attendance](ctx, r.db, r.log, "attendance",
		`SELECT id, employee_id, date, check_in, check_out, status
		 FROM attendance WHERE employee_id = $1 ORDER BY date DESC`, employeeID)
}

// FindAll lists attendance with employee names, optionally for one date.
func (r *attendanceRepository) FindAll(ctx context.Context, date string) ([]*entity.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, e.name AS employee_name, a.date, a.check_in, a.check_out, a.status
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
	`
	args := []any{}
	if date != "" {
		query += ` WHERE a.date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY a.date DESC, a.check_in DESC`

	return collect[entity.Attendance](ctx, r.db, r.log, "attendance", query, args...)
}
