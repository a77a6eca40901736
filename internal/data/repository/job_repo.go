package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	FindAll(ctx context.Context) ([]*entity.Job, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]*entity.Job, error)
	UpdateStatus(ctx context.Context, id string, status entity.JobStatus) error
}

type jobRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewJobRepository(db database.DBTX, log *zap.Logger) JobRepository {
	return &jobRepository{
		db:  db,
		log: log.With(zap.String("repository", "job")),
	}
}

func (r *jobRepository) Create(ctx context.Context, j *entity.Job) error {
	query := `
		INSERT INTO jobs (id, employee_id, title, description, status, assigned_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return execOne(ctx, r.db, r.log, "create", "job", j.ID, query,
		j.ID, j.EmployeeID, j.Title, j.Description, j.Status, j.AssignedDate, j.DueDate)
}

func (r *jobRepository) FindAll(ctx context.Context) ([]*entity.Job, error) {
	return collect[entity.Job](ctx, r.db, r.log, "jobs", `
		SELECT j.id, j.employee_id, e.name AS employee_name, j.title, j.description,
		       j.status, j.assigned_date, j.due_date
		FROM jobs j
		JOIN employees e ON j.employee_id = e.id
		ORDER BY j.due_date DESC
	`)
}

func (r *jobRepository) FindByEmployee(ctx context.Context, employeeID string) ([]*entity.Job, error) {
	return collect[entity.Job](ctx, r.db, r.log, "jobs",
		`SELECT id, employee_id, title, description, status, assigned_date, due_date
		 FROM jobs WHERE employee_id = $1 ORDER BY assigned_date DESC`, employeeID)
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id string, status entity.JobStatus) error {
	return execOne(ctx, r.db, r.log, "update", "job", id,
		`UPDATE jobs SET status = $2 WHERE id = $1`, id, status)
}
