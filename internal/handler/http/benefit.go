package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
	benefitservice "github.com/lgu-hris/payroll-backend-go/internal/service/benefit"
)

type BenefitHandler interface {
	// Benefit types
	CreateBenefitType(w http.ResponseWriter, r *http.Request)
	GetBenefitType(w http.ResponseWriter, r *http.Request)
	GetBenefitTypeByCode(w http.ResponseWriter, r *http.Request)
	ListBenefitTypes(w http.ResponseWriter, r *http.Request)
	DeactivateBenefitType(w http.ResponseWriter, r *http.Request)

	// Calculations
	Calculate(w http.ResponseWriter, r *http.Request)
	BulkCalculate(w http.ResponseWriter, r *http.Request)
	GetCalculation(w http.ResponseWriter, r *http.Request)
	ListCalculationsByEmployee(w http.ResponseWriter, r *http.Request)
}

type benefitHandlerImpl struct {
	benefitService *benefitservice.Service
}

func NewBenefitHandler(benefitService *benefitservice.Service) BenefitHandler {
	return &benefitHandlerImpl{benefitService: benefitService}
}

// ========== BENEFIT TYPES ==========

func (h *benefitHandlerImpl) CreateBenefitType(w http.ResponseWriter, r *http.Request) {
	var req benefit.CreateBenefitTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.benefitService.CreateBenefitType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Benefit type created", result)
}

func (h *benefitHandlerImpl) GetBenefitType(w http.ResponseWriter, r *http.Request) {
	result, err := h.benefitService.GetBenefitType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) GetBenefitTypeByCode(w http.ResponseWriter, r *http.Request) {
	result, err := h.benefitService.GetBenefitTypeByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) ListBenefitTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.benefitService.ListBenefitTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) DeactivateBenefitType(w http.ResponseWriter, r *http.Request) {
	if err := h.benefitService.DeactivateBenefitType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Benefit type deactivated", nil)
}

// ========== CALCULATIONS ==========

func (h *benefitHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req benefit.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.benefitService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) BulkCalculate(w http.ResponseWriter, r *http.Request) {
	var req benefit.BulkCalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.benefitService.BulkCalculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) GetCalculation(w http.ResponseWriter, r *http.Request) {
	result, err := h.benefitService.GetCalculation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *benefitHandlerImpl) ListCalculationsByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.benefitService.ListCalculationsByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
