package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/solex2006/astra-social-tutor/services"

	"github.com/gorilla/mux"
)

type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/export/{kind}.csv", h.ExportCSV).Methods("GET")
}

func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := vars["kind"]

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", kind))

	var err error
	switch kind {
	case "turns":
		err = h.service.ExportTurnsCSV(w)
	case "solutions":
		err = h.service.ExportSolutionsCSV(w)
	case "grades":
		err = h.service.ExportGradesCSV(w)
	default:
		h.writeErrorResponse(w, http.StatusNotFound, fmt.Sprintf("unknown export kind: %s", kind))
		return
	}

	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to export records")
	}
}

func (h *ExportHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
