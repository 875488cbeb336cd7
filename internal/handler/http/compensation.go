package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/handler/http/response"
)

type CompensationHandler interface {
	CreateTaxTitle(w http.ResponseWriter, r *http.Request)
	ListTaxTitles(w http.ResponseWriter, r *http.Request)
	SetTaxTitleActive(w http.ResponseWriter, r *http.Request)

	CreateDeductionTitle(w http.ResponseWriter, r *http.Request)
	ListDeductionTitles(w http.ResponseWriter, r *http.Request)
	SetDeductionTitleActive(w http.ResponseWriter, r *http.Request)

	CreateBenefit(w http.ResponseWriter, r *http.Request)
	ListBenefits(w http.ResponseWriter, r *http.Request)
	SetBenefitActive(w http.ResponseWriter, r *http.Request)

	AssignTax(w http.ResponseWriter, r *http.Request)
	AssignDeduction(w http.ResponseWriter, r *http.Request)
	AssignBenefit(w http.ResponseWriter, r *http.Request)
	ListEmployeeAssignments(w http.ResponseWriter, r *http.Request)
	RemoveTaxAssignment(w http.ResponseWriter, r *http.Request)
	RemoveDeductionAssignment(w http.ResponseWriter, r *http.Request)
	RemoveBenefitAssignment(w http.ResponseWriter, r *http.Request)
}

type CompensationHandlerImpl struct {
	compensationService compensation.Service
}

func NewCompensationHandler(compensationService compensation.Service) CompensationHandler {
	return &CompensationHandlerImpl{compensationService: compensationService}
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// CreateTaxTitle implements CompensationHandler.
func (h *CompensationHandlerImpl) CreateTaxTitle(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateTaxTitleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create tax title decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.compensationService.CreateTaxTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax title created", created)
}

// ListTaxTitles implements CompensationHandler.
func (h *CompensationHandlerImpl) ListTaxTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.compensationService.ListTaxTitles(r.Context(), activeOnly(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, titles)
}

// SetTaxTitleActive implements CompensationHandler.
func (h *CompensationHandlerImpl) SetTaxTitleActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set tax title active decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.compensationService.SetTaxTitleActive(r.Context(), chi.URLParam(r, "id"), req.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax title updated", nil)
}

// CreateDeductionTitle implements CompensationHandler.
func (h *CompensationHandlerImpl) CreateDeductionTitle(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateTitleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create deduction title decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.compensationService.CreateDeductionTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction title created", created)
}

// ListDeductionTitles implements CompensationHandler.
func (h *CompensationHandlerImpl) ListDeductionTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.compensationService.ListDeductionTitles(r.Context(), activeOnly(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, titles)
}

// SetDeductionTitleActive implements CompensationHandler.
func (h *CompensationHandlerImpl) SetDeductionTitleActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set deduction title active decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.compensationService.SetDeductionTitleActive(r.Context(), chi.URLParam(r, "id"), req.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction title updated", nil)
}

// CreateBenefit implements CompensationHandler.
func (h *CompensationHandlerImpl) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateTitleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create benefit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.compensationService.CreateBenefit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Benefit created", created)
}

// ListBenefits implements CompensationHandler.
func (h *CompensationHandlerImpl) ListBenefits(w http.ResponseWriter, r *http.Request) {
	benefits, err := h.compensationService.ListBenefits(r.Context(), activeOnly(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, benefits)
}

// SetBenefitActive implements CompensationHandler.
func (h *CompensationHandlerImpl) SetBenefitActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set benefit active decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.compensationService.SetBenefitActive(r.Context(), chi.URLParam(r, "id"), req.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Benefit updated", nil)
}

// AssignTax implements CompensationHandler.
func (h *CompensationHandlerImpl) AssignTax(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "Tax assigned", h.compensationService.AssignTax)
}

// AssignDeduction implements CompensationHandler.
func (h *CompensationHandlerImpl) AssignDeduction(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "Deduction assigned", h.compensationService.AssignDeduction)
}

// AssignBenefit implements CompensationHandler.
func (h *CompensationHandlerImpl) AssignBenefit(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "Benefit assigned", h.compensationService.AssignBenefit)
}

func (h *CompensationHandlerImpl) assign(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	fn func(ctx context.Context, req compensation.AssignRequest) (compensation.AssignmentResponse, error),
) {
	var req compensation.AssignRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	assignment, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, message, assignment)
}

// ListEmployeeAssignments implements CompensationHandler.
func (h *CompensationHandlerImpl) ListEmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	assignments, err := h.compensationService.ListEmployeeAssignments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// RemoveTaxAssignment implements CompensationHandler.
func (h *CompensationHandlerImpl) RemoveTaxAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.compensationService.RemoveTaxAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax assignment removed", nil)
}

// RemoveDeductionAssignment implements CompensationHandler.
func (h *CompensationHandlerImpl) RemoveDeductionAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.compensationService.RemoveDeductionAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction assignment removed", nil)
}

// RemoveBenefitAssignment implements CompensationHandler.
func (h *CompensationHandlerImpl) RemoveBenefitAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.compensationService.RemoveBenefitAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Benefit assignment removed", nil)
}

func activeOnly(r *http.Request) bool {
	return r.URL.Query().Get("active_only") == "true"
}
