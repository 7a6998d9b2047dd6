package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services"

	"github.com/gorilla/mux"
)

type SessionHandler struct {
	service *services.SessionService
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	router.HandleFunc("/sessions", h.ListSessions).Methods("GET")
	router.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}/history", h.GetHistory).Methods("GET")
	router.HandleFunc("/sessions/{id}/state", h.GetState).Methods("GET")
	router.HandleFunc("/sessions/{id}/messages", h.PostMessage).Methods("POST")
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	session, err := h.service.CreateSession(&req)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.service.ListSessions())
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.service.GetSession(vars["id"])
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve session")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, session)
}

func (h *SessionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	history, err := h.service.GetHistory(vars["id"])
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve history")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, history)
}

func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	state, err := h.service.GetState(vars["id"])
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve learner state")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, state)
}

func (h *SessionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	turn, err := h.service.PostMessage(r.Context(), vars["id"], req.StudentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrTurnFailed):
			h.writeErrorResponse(w, http.StatusBadGateway, err.Error())
		default:
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, turn)
}

func (h *SessionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
