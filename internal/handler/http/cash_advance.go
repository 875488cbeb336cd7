package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/handler/http/response"
)

type CashAdvanceHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type CashAdvanceHandlerImpl struct {
	cashAdvanceService cashadvance.Service
}

func NewCashAdvanceHandler(cashAdvanceService cashadvance.Service) CashAdvanceHandler {
	return &CashAdvanceHandlerImpl{cashAdvanceService: cashAdvanceService}
}

// Request implements CashAdvanceHandler.
func (h *CashAdvanceHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req cashadvance.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Cash advance request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.cashAdvanceService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cash advance requested", created)
}

// Get implements CashAdvanceHandler.
func (h *CashAdvanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	advance, err := h.cashAdvanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advance)
}

// Decide implements CashAdvanceHandler.
func (h *CashAdvanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req cashadvance.DecideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Cash advance decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid or missing token")
		return
	}
	decidedBy, _ := claims["user_id"].(string)

	advance, err := h.cashAdvanceService.Decide(r.Context(), req, decidedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cash advance updated", advance)
}

// List implements CashAdvanceHandler.
func (h *CashAdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := cashadvance.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	result, err := h.cashAdvanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}
