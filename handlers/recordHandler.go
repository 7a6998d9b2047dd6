package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services"

	"github.com/gorilla/mux"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

func (h *RecordHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/solutions", h.SubmitSolution).Methods("POST")
	router.HandleFunc("/solutions", h.ListSolutions).Methods("GET")
	router.HandleFunc("/grades", h.SubmitGrade).Methods("POST")
	router.HandleFunc("/grades", h.ListGrades).Methods("GET")
	router.HandleFunc("/turns", h.ListTurns).Methods("GET")
}

func (h *RecordHandler) SubmitSolution(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	record, err := h.service.SubmitSolution(&req)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, record)
}

func (h *RecordHandler) ListSolutions(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.service.ListSolutions()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve solutions")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, solutions)
}

func (h *RecordHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	record, err := h.service.SubmitGrade(&req)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, record)
}

func (h *RecordHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.service.ListGrades()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve grades")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, grades)
}

// ListTurns returns recorded turns, filtered to one session when
// ?session_id= is given.
func (h *RecordHandler) ListTurns(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	var (
		turns []*models.TurnRecord
		err   error
	)
	if sessionID != "" {
		turns, err = h.service.ListTurns(sessionID)
	} else {
		turns, err = h.service.ListAllTurns()
	}
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve turns")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, turns)
}

func (h *RecordHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *RecordHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
