package usecase

import (
	"context"
	"errors"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

type AttendanceService interface {
	// CheckIn returns the recorded check-in time as HH:MM.
	CheckIn(ctx context.Context, req *request.AttendanceRequest) (string, error)
	CheckOut(ctx context.Context, req *request.AttendanceRequest) (string, error)
	History(ctx context.Context, employeeID string) ([]*entity.Attendance, error)
	// All lists every employee's attendance, optionally for one date only.
	All(ctx context.Context, date string) ([]*entity.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	log            *zap.Logger
	now            Clock
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, log *zap.Logger, now Clock) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		log:            log.With(zap.String("service", "attendance")),
		now:            now,
	}
}

func (as *attendanceService) CheckIn(ctx context.Context, req *request.AttendanceRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	now := as.now()
	date := utils.FormatDate(now)

	exists, err := as.attendanceRepo.ExistsForDate(ctx, req.EmployeeID, date)
	if err != nil {
		return "", storageErr("check in", err)
	}
	if exists {
		return "", ErrAlreadyCheckedIn
	}

	record := &entity.Attendance{
		ID:         utils.GenerateID("att", now),
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    utils.FormatClock(now),
		Status:     entity.AttendancePresent,
	}
	if err := as.attendanceRepo.Create(ctx, record); err != nil {
		// the unique (employee_id, date) index catches a concurrent check-in
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrAlreadyCheckedIn
		}
		return "", storageErr("check in", err)
	}

	as.log.Info("Checked in",
		zap.String("employee_id", req.EmployeeID),
		zap.String("time", record.CheckIn),
	)
	return record.CheckIn, nil
}

// CheckOut stamps today's record. Without a check-in there is nothing to
// stamp and the call still succeeds.
func (as *attendanceService) CheckOut(ctx context.Context, req *request.AttendanceRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	now := as.now()
	checkOut := utils.FormatClock(now)
	if err := as.attendanceRepo.SetCheckOut(ctx, req.EmployeeID, utils.FormatDate(now), checkOut); err != nil {
		return "", storageErr("check out", err)
	}
	return checkOut, nil
}

func (as *attendanceService) History(ctx context.Context, employeeID string) ([]*entity.Attendance, error) {
	history, err := as.attendanceRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageErr("attendance history", err)
	}
	return history, nil
}

func (as *attendanceService) All(ctx context.Context, date string) ([]*entity.Attendance, error) {
	records, err := as.attendanceRepo.FindAll(ctx, date)
	if err != nil {
		return nil, storageErr("list attendance", err)
	}
	return records, nil
}
