package usecase

import (
	"context"
	"slices"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

var jobStatuses = []entity.JobStatus{entity.JobPending, entity.JobInProgress, entity.JobCompleted}

type JobService interface {
	All(ctx context.Context) ([]*entity.Job, error)
	ForEmployee(ctx context.Context, employeeID string) ([]*entity.Job, error)
	Assign(ctx context.Context, req *request.AssignJobRequest) (string, error)
	UpdateStatus(ctx context.Context, id string, req *request.JobStatusRequest) error
}

type jobService struct {
	jobRepo repository.JobRepository
	log     *zap.Logger
	now     Clock
}

func NewJobService(jobRepo repository.JobRepository, log *zap.Logger, now Clock) JobService {
	return &jobService{
		jobRepo: jobRepo,
		log:     log,
		now:     now,
	}
}

func (js *jobService) All(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := js.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list jobs", err)
	}
	return jobs, nil
}

func (js *jobService) ForEmployee(ctx context.Context, employeeID string) ([]*entity.Job, error) {
	jobs, err := js.jobRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageErr("list employee jobs", err)
	}
	return jobs, nil
}

// Assign files a new Pending job and returns its id.
func (js *jobService) Assign(ctx context.Context, req *request.AssignJobRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	now := js.now()
	job := &entity.Job{
		ID:           utils.GenerateID("job", now),
		EmployeeID:   req.EmployeeID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       entity.JobPending,
		AssignedDate: utils.FormatDate(now),
		DueDate:      req.DueDate,
	}
	if err := js.jobRepo.Create(ctx, job); err != nil {
		return "", storageErr("assign job", err)
	}

	js.log.Info("Job assigned",
		zap.String("job_id", job.ID),
		zap.String("employee_id", job.EmployeeID),
	)
	return job.ID, nil
}

func (js *jobService) UpdateStatus(ctx context.Context, id string, req *request.JobStatusRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	status := entity.JobStatus(req.Status)
	if !slices.Contains(jobStatuses, status) {
		return &ValidationError{Fields: map[string]string{
			"status": "Must be one of: Pending, In Progress, Completed",
		}}
	}

	if err := js.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		return storageErr("update job status", err)
	}
	return nil
}
