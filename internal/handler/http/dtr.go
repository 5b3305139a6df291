package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
	dtrservice "github.com/lgu-hris/payroll-backend-go/internal/service/dtr"
)

const maxDTRUploadBytes = 10 << 20 // 10 MiB

type DTRHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	ListActiveRecords(w http.ResponseWriter, r *http.Request)
}

type dtrHandlerImpl struct {
	dtrService *dtrservice.Service
}

func NewDTRHandler(dtrService *dtrservice.Service) DTRHandler {
	return &dtrHandlerImpl{dtrService: dtrService}
}

// Import accepts a multipart upload: a "file" part with the DTR CSV, plus
// "payroll_period_id" and an optional "confirm_reimport" field.
func (h *dtrHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDTRUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "DTR file is required", nil)
		return
	}
	defer file.Close()

	rows, err := dtrservice.NewCSVSource(file).Rows()
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	confirmReimport, _ := strconv.ParseBool(r.FormValue("confirm_reimport"))
	req := dtr.ImportRequest{
		PayrollPeriodID: r.FormValue("payroll_period_id"),
		FileName:        header.Filename,
		Rows:            rows,
		ConfirmReimport: confirmReimport,
	}

	result, err := h.dtrService.Import(r.Context(), req, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		// A fully rejected file still carries the per-row issues; return
		// them so the source data can be corrected and retried.
		if errors.Is(err, dtr.ErrNoValidRecords) {
			response.BadRequestWithData(w, err.Error(), result)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "DTR imported", result)
}

func (h *dtrHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.dtrService.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dtrHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	result, err := h.dtrService.ListBatches(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dtrHandlerImpl) ListActiveRecords(w http.ResponseWriter, r *http.Request) {
	result, err := h.dtrService.ListActiveRecords(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
