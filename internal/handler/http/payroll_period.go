package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
	periodservice "github.com/lgu-hris/payroll-backend-go/internal/service/payrollperiod"
)

type PayrollPeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Process(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)

	ListItems(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollPeriodHandlerImpl struct {
	periodService *periodservice.Service
}

func NewPayrollPeriodHandler(periodService *periodservice.Service) PayrollPeriodHandler {
	return &payrollPeriodHandlerImpl{periodService: periodService}
}

// ========== LIFECYCLE ==========

func (h *payrollPeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payrollperiod.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.periodService.CreatePeriod(r.Context(), req, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *payrollPeriodHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodService.GetPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollPeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payrollperiod.PeriodFilter{Page: 1, Limit: 20}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &year
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := payrollperiod.Status(status)
		filter.Status = &s
	}

	results, total, err := h.periodService.ListPeriods(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (h *payrollPeriodHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.periodService.DeletePeriod(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period deleted", nil)
}

// ========== PROCESSING ==========

func (h *payrollPeriodHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodService.ProcessPayroll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed", result)
}

func (h *payrollPeriodHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	if err := h.periodService.Finalize(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll finalized", nil)
}

func (h *payrollPeriodHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.periodService.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cancelled", nil)
}

func (h *payrollPeriodHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	if err := h.periodService.MarkPaid(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll marked paid", nil)
}

// ========== ITEMS AND SUMMARY ==========

func (h *payrollPeriodHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodService.ListItems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollPeriodHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodService.GetSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
