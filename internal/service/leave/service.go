package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/keylock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

type leaveService struct {
	requestRepo    leave.LeaveRequestRepository
	balanceRepo    leave.LeaveBalanceRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	txManager      database.TxManager
	clock          clock.Clock
	locks          *keylock.KeyLock
	logger         *slog.Logger
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	txManager database.TxManager,
	clk clock.Clock,
	logger *slog.Logger,
) leave.LeaveService {
	return &leaveService{
		requestRepo:    requestRepo,
		balanceRepo:    balanceRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		txManager:      txManager,
		clock:          clk,
		locks:          keylock.New(),
		logger:         logger,
	}
}

func (s *leaveService) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	defer s.locks.Lock(req.EmployeeID)()

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start := s.civilDay(req.StartDate)
	end := s.civilDay(req.EndDate)

	workingDays := leave.WorkingDayCount(start, end)
	if workingDays == 0 {
		return leave.LeaveRequestResponse{}, leave.ErrNoWorkingDays
	}

	balance, err := s.balanceRepo.GetByEmployeeTypeYear(ctx, req.EmployeeID, req.LeaveTypeID, start.Year())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	if balance.Remaining() < float64(workingDays) {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	active, err := s.requestRepo.GetActiveByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get active leave requests: %w", err)
	}
	for _, other := range active {
		if leave.RangesOverlap(start, end, other.StartDate, other.EndDate) {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
		}
	}

	// Conflicts inform the reviewer; they never block submission.
	conflicts, err := s.conflictDates(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to analyze attendance conflicts: %w", err)
	}

	request := leave.LeaveRequest{
		EmployeeID:            req.EmployeeID,
		LeaveTypeID:           req.LeaveTypeID,
		StartDate:             start,
		EndDate:               end,
		Reason:                req.Reason,
		Status:                leave.LeaveStatusPending,
		HasAttendanceConflict: len(conflicts) > 0,
		SubmittedAt:           s.clock.Now(),
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toLeaveRequestResponse(created), nil
}

func (s *leaveService) ApproveLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	defer s.locks.Lock(request.EmployeeID)()

	var approved leave.LeaveRequest
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if request.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		// Conflicts are recomputed now, not read from the submission flag;
		// attendance may have changed while the request sat in review.
		conflicts, err := s.conflictDates(ctx, request.EmployeeID, request.StartDate, request.EndDate)
		if err != nil {
			return fmt.Errorf("failed to analyze attendance conflicts: %w", err)
		}

		workingDays := leave.WorkingDayCount(request.StartDate, request.EndDate)
		effective := float64(workingDays - len(conflicts))
		if effective < 0 {
			effective = 0
		}

		balance, err := s.balanceRepo.GetByEmployeeTypeYear(ctx, request.EmployeeID, request.LeaveTypeID, request.StartDate.Year())
		if err != nil {
			return fmt.Errorf("failed to get leave balance: %w", err)
		}
		if err := balance.Deduct(effective); err != nil {
			return err
		}
		if err := s.balanceRepo.Update(ctx, balance); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		now := s.clock.Now()
		request.Status = leave.LeaveStatusApproved
		request.EffectiveDays = &effective
		request.HasAttendanceConflict = len(conflicts) > 0
		request.ApprovedAt = &now

		if err := s.requestRepo.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(approved), nil
}

func (s *leaveService) RejectLeaveRequest(ctx context.Context, requestID, note string) (leave.LeaveRequestResponse, error) {
	if validator.IsEmpty(note) {
		return leave.LeaveRequestResponse{}, leave.ErrRejectionNoteRequired
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	defer s.locks.Lock(request.EmployeeID)()

	request, err = s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.LeaveStatusRejected
	request.RejectionReason = &note

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toLeaveRequestResponse(request), nil
}

func (s *leaveService) CancelLeaveRequest(ctx context.Context, requestID, employeeID string) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID != employeeID {
		return leave.ErrNotRequestOwner
	}

	defer s.locks.Lock(request.EmployeeID)()

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if !request.Cancellable(s.clock.Today()) {
			return leave.ErrNotCancellable
		}

		// An approved request restores exactly the days frozen at approval,
		// regardless of attendance edits made since.
		if request.Status == leave.LeaveStatusApproved && request.EffectiveDays != nil {
			balance, err := s.balanceRepo.GetByEmployeeTypeYear(ctx, request.EmployeeID, request.LeaveTypeID, request.StartDate.Year())
			if err != nil {
				return fmt.Errorf("failed to get leave balance: %w", err)
			}
			balance.Restore(*request.EffectiveDays)
			if err := s.balanceRepo.Update(ctx, balance); err != nil {
				return fmt.Errorf("failed to update leave balance: %w", err)
			}
		}

		if err := s.requestRepo.Delete(ctx, requestID); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}

		return nil
	})
}

func (s *leaveService) AnalyzeConflicts(ctx context.Context, requestID string) (leave.ConflictAnalysisResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.ConflictAnalysisResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	conflicts, err := s.conflictDates(ctx, request.EmployeeID, request.StartDate, request.EndDate)
	if err != nil {
		return leave.ConflictAnalysisResponse{}, fmt.Errorf("failed to analyze attendance conflicts: %w", err)
	}

	workingDays := leave.WorkingDayCount(request.StartDate, request.EndDate)
	effective := float64(workingDays - len(conflicts))
	if effective < 0 {
		effective = 0
	}

	dates := make([]string, 0, len(conflicts))
	for _, d := range conflicts {
		dates = append(dates, d.Format("2006-01-02"))
	}

	return leave.ConflictAnalysisResponse{
		RequestID:     request.ID,
		WorkingDays:   workingDays,
		ConflictDates: dates,
		EffectiveDays: effective,
	}, nil
}

func (s *leaveService) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return toLeaveRequestResponse(request), nil
}

func (s *leaveService) ListLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveRequestResponse(request))
	}
	return responses, nil
}

func (s *leaveService) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	if !validator.IsValidYear(year) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}

	balances, err := s.balanceRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		responses = append(responses, leave.LeaveBalanceResponse{
			ID:            balance.ID,
			EmployeeID:    balance.EmployeeID,
			LeaveTypeID:   balance.LeaveTypeID,
			LeaveTypeName: balance.LeaveTypeName,
			Year:          balance.Year,
			TotalDays:     balance.TotalDays,
			UsedDays:      balance.UsedDays,
			CarryOverDays: balance.CarryOverDays,
			RemainingDays: balance.Remaining(),
		})
	}
	return responses, nil
}

// conflictDates returns the working days in [start, end] on which the
// employee already has a complete attendance record.
func (s *leaveService) conflictDates(ctx context.Context, employeeID string, start, end time.Time) ([]time.Time, error) {
	records, err := s.attendanceRepo.GetByDateRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	complete := make(map[string]bool, len(records))
	for _, record := range records {
		if record.IsComplete() {
			complete[record.Date.Format("2006-01-02")] = true
		}
	}

	var conflicts []time.Time
	for _, day := range leave.WorkingDays(start, end) {
		if complete[day.Format("2006-01-02")] {
			conflicts = append(conflicts, day)
		}
	}
	return conflicts, nil
}

func (s *leaveService) civilDay(dateStr string) time.Time {
	d, _ := validator.IsValidDate(dateStr)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.clock.Location())
}

func toLeaveRequestResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:                    request.ID,
		EmployeeID:            request.EmployeeID,
		EmployeeName:          request.EmployeeName,
		LeaveTypeID:           request.LeaveTypeID,
		LeaveTypeName:         request.LeaveTypeName,
		StartDate:             request.StartDate.Format("2006-01-02"),
		EndDate:               request.EndDate.Format("2006-01-02"),
		WorkingDays:           leave.WorkingDayCount(request.StartDate, request.EndDate),
		Reason:                request.Reason,
		Status:                string(request.Status),
		HasAttendanceConflict: request.HasAttendanceConflict,
		EffectiveDays:         request.EffectiveDays,
		RejectionReason:       request.RejectionReason,
		SubmittedAt:           request.SubmittedAt.Format(time.RFC3339),
	}
	if request.ApprovedAt != nil {
		formatted := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &formatted
	}
	return resp
}
