package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Submit implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.overtimeService.SubmitOvertimeRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", resp)
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	resp, err := h.overtimeService.ApproveOvertimeRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", resp)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	var req overtime.RejectOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.overtimeService.RejectOvertimeRequest(r.Context(), id, req.Note)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", resp)
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	resp, err := h.overtimeService.GetOvertimeRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	resp, err := h.overtimeService.ListOvertimeRequests(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
