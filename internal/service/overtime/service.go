package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/keylock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

type overtimeService struct {
	overtimeRepo   overtime.OvertimeRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	locks          *keylock.KeyLock
	logger         *slog.Logger
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	logger *slog.Logger,
) overtime.OvertimeService {
	return &overtimeService{
		overtimeRepo:   overtimeRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		locks:          keylock.New(),
		logger:         logger,
	}
}

// SubmitOvertimeRequest runs the checks in a fixed order; the first failure
// is surfaced, so callers see deterministic errors for multi-fault input.
func (s *overtimeService) SubmitOvertimeRequest(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	defer s.locks.Lock(req.EmployeeID)()

	eligible, err := s.employeeRepo.IsOvertimeEligible(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !eligible {
		return overtime.OvertimeResponse{}, overtime.ErrNotEligible
	}

	start, _ := validator.IsValidDateTime(req.StartTime)
	end, _ := validator.IsValidDateTime(req.EndTime)
	start = start.In(s.clock.Location())
	end = end.In(s.clock.Location())

	if !end.After(start) {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidInterval
	}

	if s.civilDay(start).Before(s.clock.Today()) {
		return overtime.OvertimeResponse{}, overtime.ErrPastDate
	}

	duration := end.Sub(start)
	if duration < overtime.MinDurationMinutes*time.Minute {
		return overtime.OvertimeResponse{}, overtime.ErrBelowMinimumDuration
	}
	if duration > overtime.MaxDailyHours*time.Hour {
		return overtime.OvertimeResponse{}, overtime.ErrExceedsDailyCap
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, s.civilDay(start))
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record == nil || !record.IsComplete() {
		return overtime.OvertimeResponse{}, overtime.ErrNoCompleteAttendance
	}

	active, err := s.overtimeRepo.GetActiveByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get active overtime requests: %w", err)
	}

	hours := overtime.HoursFromDuration(duration)

	// Weekly cap counts pending and approved requests in the same ISO week.
	// Exactly 20 hours passes; only an excess is rejected.
	year, week := start.ISOWeek()
	weekTotal := hours
	for _, other := range active {
		oy, ow := other.StartTime.In(s.clock.Location()).ISOWeek()
		if oy == year && ow == week {
			weekTotal = weekTotal.Add(other.Hours)
		}
	}
	if weekTotal.GreaterThan(decimal.NewFromInt(overtime.MaxWeeklyHours)) {
		return overtime.OvertimeResponse{}, overtime.ErrExceedsWeeklyCap
	}

	candidate := overtime.OvertimeRequest{
		EmployeeID:  req.EmployeeID,
		StartTime:   start,
		EndTime:     end,
		Reason:      req.Reason,
		Hours:       hours,
		Status:      overtime.OvertimeStatusPending,
		SubmittedAt: s.clock.Now(),
	}

	for _, other := range active {
		if candidate.Overlaps(other) {
			return overtime.OvertimeResponse{}, overtime.ErrOverlappingOvertime
		}
	}

	created, err := s.overtimeRepo.Create(ctx, candidate)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return toOvertimeResponse(created), nil
}

func (s *overtimeService) ApproveOvertimeRequest(ctx context.Context, requestID string) (overtime.OvertimeApprovalResponse, error) {
	request, err := s.overtimeRepo.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OvertimeApprovalResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	defer s.locks.Lock(request.EmployeeID)()

	request, err = s.overtimeRepo.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OvertimeApprovalResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	if request.Status != overtime.OvertimeStatusPending {
		return overtime.OvertimeApprovalResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	// Classification may have changed since submission.
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return overtime.OvertimeApprovalResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.OvertimeEligible {
		return overtime.OvertimeApprovalResponse{}, overtime.ErrNotEligible
	}

	now := s.clock.Now()
	request.Status = overtime.OvertimeStatusApproved
	request.ApprovedAt = &now

	if err := s.overtimeRepo.Update(ctx, request); err != nil {
		return overtime.OvertimeApprovalResponse{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	multiplier := overtime.PremiumMultiplier(request.StartTime)
	pay := overtime.PremiumPay(request.Hours, emp.HourlyRate, request.StartTime)

	return overtime.OvertimeApprovalResponse{
		OvertimeResponse: toOvertimeResponse(request),
		Multiplier:       multiplier.String(),
		PremiumPay:       pay.StringFixed(2),
	}, nil
}

func (s *overtimeService) RejectOvertimeRequest(ctx context.Context, requestID, note string) (overtime.OvertimeResponse, error) {
	if validator.IsEmpty(note) {
		return overtime.OvertimeResponse{}, overtime.ErrRejectionNoteRequired
	}

	request, err := s.overtimeRepo.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	defer s.locks.Lock(request.EmployeeID)()

	request, err = s.overtimeRepo.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	if request.Status != overtime.OvertimeStatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	request.Status = overtime.OvertimeStatusRejected
	request.RejectionReason = &note

	if err := s.overtimeRepo.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	return toOvertimeResponse(request), nil
}

func (s *overtimeService) GetOvertimeRequest(ctx context.Context, requestID string) (overtime.OvertimeResponse, error) {
	request, err := s.overtimeRepo.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return toOvertimeResponse(request), nil
}

func (s *overtimeService) ListOvertimeRequests(ctx context.Context, employeeID string) ([]overtime.OvertimeResponse, error) {
	requests, err := s.overtimeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toOvertimeResponse(request))
	}
	return responses, nil
}

func (s *overtimeService) civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.clock.Location())
}

func toOvertimeResponse(request overtime.OvertimeRequest) overtime.OvertimeResponse {
	resp := overtime.OvertimeResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		StartTime:       request.StartTime.Format(time.RFC3339),
		EndTime:         request.EndTime.Format(time.RFC3339),
		Hours:           request.Hours.StringFixed(2),
		Reason:          request.Reason,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
		SubmittedAt:     request.SubmittedAt.Format(time.RFC3339),
	}
	if request.ApprovedAt != nil {
		formatted := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &formatted
	}
	return resp
}
