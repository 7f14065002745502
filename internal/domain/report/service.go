package report

import "context"

type ReportService interface {
	GetMonthlyAttendanceSummary(ctx context.Context, req *MonthlySummaryRequest) (*MonthlyAttendanceSummary, error)
	GetLeaveUtilization(ctx context.Context, employeeID string, year int) (*LeaveUtilizationReport, error)
	GetOvertimeRanking(ctx context.Context, year, month int) (*OvertimeRankingReport, error)
}
