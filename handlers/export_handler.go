package handlers

import (
	"net/http"
	"strconv"

	"github.com/lucaferrario/tournament-manager/export"
	"github.com/lucaferrario/tournament-manager/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportService.BuildWorkbook(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="tournament.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ExportHandler) Publish(w http.ResponseWriter, r *http.Request) {
	url, err := h.exportService.PublishWorkbook(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"url": url}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
