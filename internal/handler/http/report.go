package http

import (
	"net/http"
	"strconv"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/report"
	"github.com/kronoshq/timekeeping-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	LeaveUtilization(w http.ResponseWriter, r *http.Request)
	OvertimeRanking(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func queryInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	return v, err == nil
}

// MonthlySummary implements ReportHandler.
func (h *ReportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, ok := queryInt(r, "month")
	if !ok {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	resp, err := h.reportService.GetMonthlyAttendanceSummary(r.Context(), &report.MonthlySummaryRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// LeaveUtilization implements ReportHandler.
func (h *ReportHandlerImpl) LeaveUtilization(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	resp, err := h.reportService.GetLeaveUtilization(r.Context(), r.URL.Query().Get("employee_id"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// OvertimeRanking implements ReportHandler.
func (h *ReportHandlerImpl) OvertimeRanking(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, ok := queryInt(r, "month")
	if !ok {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	resp, err := h.reportService.GetOvertimeRanking(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
