package adaptor

import (
	"context"
	"net/http"
	"testing"

	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAttendanceService struct {
	usecase.AttendanceService
	checkIn func(*request.AttendanceRequest) (string, error)
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, req *request.AttendanceRequest) (string, error) {
	return f.checkIn(req)
}

func TestPortalHandler_CheckIn(t *testing.T) {
	h := NewPortalHandler(&fakeAttendanceService{
		checkIn: func(req *request.AttendanceRequest) (string, error) {
			assert.Equal(t, "emp-1", req.EmployeeID)
			return "09:30", nil
		},
	}, nil, nil, zap.NewNop())

	rec := serve(http.MethodPost, "/api/attendance/check-in", "/api/attendance/check-in",
		`{"employeeId":"emp-1"}`, h.CheckIn)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"checkIn":"09:30"}`, rec.Body.String())
}

func TestPortalHandler_CheckInTwice(t *testing.T) {
	h := NewPortalHandler(&fakeAttendanceService{
		checkIn: func(*request.AttendanceRequest) (string, error) {
			return "", usecase.ErrAlreadyCheckedIn
		},
	}, nil, nil, zap.NewNop())

	rec := serve(http.MethodPost, "/api/attendance/check-in", "/api/attendance/check-in",
		`{"employeeId":"emp-1"}`, h.CheckIn)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Already checked in today"}`, rec.Body.String())
}
