package task

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tvintergoller/keep-informed/internal"
	"github.com/tvintergoller/keep-informed/internal/transport"
	"github.com/tvintergoller/keep-informed/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateTask(dto CreateTaskDTO, assigneeID int64) (*Task, error)
	ListTasks(assigneeID int64) ([]*Task, error)
	DeleteTask(taskID, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// The acting user arrives as a plain user_id query parameter, lifted into
// the context by middleware.ActingUser; see auth.IdentityResolver for why
// it is trusted as-is.
func callerID(r *http.Request) (int64, bool) {
	id := internal.UserIDFromContext(r.Context())
	return id, id != 0
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	assigneeID, ok := callerID(r)
	if !ok {
		h.Logger.Error("CreateTask: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTask: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.Service.CreateTask(dto, assigneeID)
	if err != nil {
		h.Logger.Error("CreateTask: service error", "error", err, "assignee_id", assigneeID)
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, task)
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	assigneeID, ok := callerID(r)
	if !ok {
		h.Logger.Error("ListTasks: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	tasks, err := h.Service.ListTasks(assigneeID)
	if err != nil {
		h.Logger.Error("ListTasks: service error", "error", err, "assignee_id", assigneeID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(r)
	if !ok {
		h.Logger.Error("DeleteTask: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	taskIDStr := chi.URLParam(r, "id")
	taskID, err := strconv.ParseInt(taskIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteTask: invalid task ID", "id", taskIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid task ID")
		return
	}

	if err := h.Service.DeleteTask(taskID, caller); err != nil {
		h.Logger.Error("DeleteTask: service error", "error", err, "task_id", taskID, "caller_id", caller)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
