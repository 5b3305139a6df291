package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
	overrideservice "github.com/lgu-hris/payroll-backend-go/internal/service/override"
)

type ComponentHandler interface {
	// Components
	CreateComponent(w http.ResponseWriter, r *http.Request)
	ListComponents(w http.ResponseWriter, r *http.Request)
	DeactivateComponent(w http.ResponseWriter, r *http.Request)

	// Overrides
	CreateOverride(w http.ResponseWriter, r *http.Request)
	BulkCreateOverrides(w http.ResponseWriter, r *http.Request)
	DeactivateOverride(w http.ResponseWriter, r *http.Request)
	ListOverridesByEmployee(w http.ResponseWriter, r *http.Request)
}

type componentHandlerImpl struct {
	overrideService *overrideservice.Service
}

func NewComponentHandler(overrideService *overrideservice.Service) ComponentHandler {
	return &componentHandlerImpl{overrideService: overrideService}
}

// ========== COMPONENTS ==========

func (h *componentHandlerImpl) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req component.CreateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.overrideService.CreateComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll component created", result)
}

func (h *componentHandlerImpl) ListComponents(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.overrideService.ListComponents(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *componentHandlerImpl) DeactivateComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.overrideService.DeactivateComponent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll component deactivated", nil)
}

// ========== OVERRIDES ==========

func (h *componentHandlerImpl) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var req component.CreateOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.overrideService.CreateOverride(r.Context(), req, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee override created", result)
}

func (h *componentHandlerImpl) BulkCreateOverrides(w http.ResponseWriter, r *http.Request) {
	var req component.BulkCreateOverridesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Overrides) == 0 {
		response.BadRequest(w, "At least one override is required", nil)
		return
	}

	result := h.overrideService.BulkCreateOverrides(r.Context(), req, middleware.UserIDFromContext(r.Context()))
	response.Success(w, result)
}

func (h *componentHandlerImpl) DeactivateOverride(w http.ResponseWriter, r *http.Request) {
	err := h.overrideService.DeactivateOverride(r.Context(), chi.URLParam(r, "id"), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee override deactivated", nil)
}

func (h *componentHandlerImpl) ListOverridesByEmployee(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.overrideService.ListOverridesByEmployee(r.Context(), chi.URLParam(r, "employeeID"), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
