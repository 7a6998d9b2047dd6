package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solex2006/astra-social-tutor/services"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	router.HandleFunc("/tasks/{id}", h.GetTaskByID).Methods("GET")
}

// ListTasks returns the catalog; with ?q= it resolves a single task by
// fuzzy lookup instead.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query != "" {
		task, err := h.service.FindTask(query)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				h.writeErrorResponse(w, http.StatusNotFound, err.Error())
			} else {
				h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to find task")
			}
			return
		}
		h.writeJSONResponse(w, http.StatusOK, task)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, h.service.ListTasks())
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	task, err := h.service.GetTaskByID(vars["id"])
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve task")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, task)
}

func (h *TaskHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *TaskHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
