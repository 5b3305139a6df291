package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/audit"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	ListByRecord(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditRepo audit.Repository
}

func NewAuditHandler(auditRepo audit.Repository) AuditHandler {
	return &auditHandlerImpl{auditRepo: auditRepo}
}

func (h *auditHandlerImpl) ListByRecord(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditRepo.ListByRecord(r.Context(), chi.URLParam(r, "table"), chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		results = append(results, audit.ToResponse(e))
	}
	response.Success(w, results)
}
