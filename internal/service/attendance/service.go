package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/keylock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	tardinessRepo  attendance.TardinessRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	locks          *keylock.KeyLock
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	tardinessRepo attendance.TardinessRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		tardinessRepo:  tardinessRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		locks:          keylock.New(),
		logger:         logger,
	}
}

func (s *attendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	defer s.locks.Lock(req.EmployeeID)()

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.clock.Now()
	today := s.clock.Today()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	record := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        today,
		TimeIn:      &now,
		LateMinutes: attendance.LateMinutes(now),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.regenerateTardiness(ctx, created)

	return toAttendanceResponse(created), nil
}

func (s *attendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	defer s.locks.Lock(req.EmployeeID)()

	now := s.clock.Now()
	today := s.clock.Today()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing == nil || !existing.HasTimeIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if existing.HasTimeOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	record := *existing
	record.TimeOut = &now
	record.UndertimeMinutes = attendance.UndertimeMinutes(now)
	record.WorkedMinutes = attendance.WorkedMinutes(*record.TimeIn, now)

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.regenerateTardiness(ctx, record)

	return toAttendanceResponse(record), nil
}

func (s *attendanceService) CreateManual(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	defer s.locks.Lock(req.EmployeeID)()

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day, _ := validator.IsValidDate(req.Date)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.clock.Location())

	timeIn := combineClock(day, req.TimeIn)

	var timeOut *time.Time
	if req.TimeOut != nil {
		t := combineClock(day, *req.TimeOut)
		if t.Before(timeIn) {
			return attendance.AttendanceResponse{}, attendance.ErrTimeOutBeforeTimeIn
		}
		timeOut = &t
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	}

	record := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        day,
		TimeIn:      &timeIn,
		TimeOut:     timeOut,
		LateMinutes: attendance.LateMinutes(timeIn),
	}
	if timeOut != nil {
		record.UndertimeMinutes = attendance.UndertimeMinutes(*timeOut)
		record.WorkedMinutes = attendance.WorkedMinutes(timeIn, *timeOut)
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.regenerateTardiness(ctx, created)

	return toAttendanceResponse(created), nil
}

func (s *attendanceService) UpdateManual(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	defer s.locks.Lock(record.EmployeeID)()

	// Reload under the lock so concurrent punches cannot be overwritten.
	record, err = s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.TimeIn != nil {
		t := combineClock(record.Date, *req.TimeIn)
		record.TimeIn = &t
	}
	if req.TimeOut != nil {
		t := combineClock(record.Date, *req.TimeOut)
		record.TimeOut = &t
	}

	if record.TimeIn != nil && record.TimeOut != nil && record.TimeOut.Before(*record.TimeIn) {
		return attendance.AttendanceResponse{}, attendance.ErrTimeOutBeforeTimeIn
	}

	record.LateMinutes = 0
	record.UndertimeMinutes = 0
	record.WorkedMinutes = 0
	if record.TimeIn != nil {
		record.LateMinutes = attendance.LateMinutes(*record.TimeIn)
	}
	if record.TimeOut != nil {
		record.UndertimeMinutes = attendance.UndertimeMinutes(*record.TimeOut)
	}
	if record.IsComplete() {
		record.WorkedMinutes = attendance.WorkedMinutes(*record.TimeIn, *record.TimeOut)
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.regenerateTardiness(ctx, record)

	return toAttendanceResponse(record), nil
}

func (s *attendanceService) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return toAttendanceResponse(record), nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAttendanceResponse(record))
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

func (s *attendanceService) GetTardiness(ctx context.Context, attendanceID string) ([]attendance.TardinessResponse, error) {
	if _, err := s.attendanceRepo.GetByID(ctx, attendanceID); err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	records, err := s.tardinessRepo.GetByAttendanceID(ctx, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tardiness records: %w", err)
	}

	responses := make([]attendance.TardinessResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.TardinessResponse{
			ID:           record.ID,
			AttendanceID: record.AttendanceID,
			Kind:         string(record.Kind),
			Minutes:      record.Minutes,
			Description:  record.Description,
		})
	}

	return responses, nil
}

// regenerateTardiness rebuilds the penalty events for a record from its current
// flags. Stale records are deleted first, never patched. Failures here must not
// fail the punch itself; the ledger is repaired on the next edit.
func (s *attendanceService) regenerateTardiness(ctx context.Context, record attendance.Attendance) {
	if record.ID == "" {
		s.logger.WarnContext(ctx, "skipping tardiness regeneration",
			slog.String("reason", attendance.ErrMissingAttendanceID.Error()))
		return
	}

	if err := s.tardinessRepo.DeleteByAttendanceID(ctx, record.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear tardiness records",
			slog.String("attendance_id", record.ID),
			slog.String("error", err.Error()))
		return
	}

	if record.LateMinutes > 0 {
		_, err := s.tardinessRepo.Create(ctx, attendance.TardinessRecord{
			AttendanceID: record.ID,
			Kind:         attendance.TardinessLate,
			Minutes:      record.LateMinutes,
			Description:  fmt.Sprintf("arrived %d minute(s) after scheduled start", record.LateMinutes),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "failed to create late record",
				slog.String("attendance_id", record.ID),
				slog.String("error", err.Error()))
		}
	}

	if record.UndertimeMinutes > 0 {
		_, err := s.tardinessRepo.Create(ctx, attendance.TardinessRecord{
			AttendanceID: record.ID,
			Kind:         attendance.TardinessUndertime,
			Minutes:      record.UndertimeMinutes,
			Description:  fmt.Sprintf("left %d minute(s) before scheduled end", record.UndertimeMinutes),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "failed to create undertime record",
				slog.String("attendance_id", record.ID),
				slog.String("error", err.Error()))
		}
	}
}

// combineClock stamps a wall-clock string onto a civil day in its location.
func combineClock(day time.Time, clockStr string) time.Time {
	t, _ := validator.IsValidClockTime(clockStr)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location())
}

func toAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeeName:     record.EmployeeName,
		Date:             record.Date.Format("2006-01-02"),
		Classification:   string(record.ClockInClassification()),
		IsComplete:       record.IsComplete(),
		IsLate:           record.IsLate(),
		IsEarlyOut:       record.IsEarlyOut(),
		LateMinutes:      record.LateMinutes,
		UndertimeMinutes: record.UndertimeMinutes,
		WorkedMinutes:    record.WorkedMinutes,
	}

	if record.TimeIn != nil {
		formatted := record.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &formatted
	}
	if record.TimeOut != nil {
		formatted := record.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &formatted
	}
	if !record.CreatedAt.IsZero() {
		resp.CreatedAt = record.CreatedAt.Format(time.RFC3339)
	}
	if !record.UpdatedAt.IsZero() {
		resp.UpdatedAt = record.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}
