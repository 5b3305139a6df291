package http

import (
	"encoding/json"
	"net/http"

	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
	compensationservice "github.com/lgu-hris/payroll-backend-go/internal/service/compensation"
)

type CompensationHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
}

type compensationHandlerImpl struct {
	compensationService *compensationservice.Service
}

func NewCompensationHandler(compensationService *compensationservice.Service) CompensationHandler {
	return &compensationHandlerImpl{compensationService: compensationService}
}

func (h *compensationHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req compensationservice.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.compensationService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
