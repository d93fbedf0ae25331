package event

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tvintergoller/keep-informed/internal/transport"
	"github.com/tvintergoller/keep-informed/pkg/logger"
)

type ServiceAPI interface {
	CreateEvent(dto CreateEventDTO) (*Event, error)
	ListEvents(skip, limit int) ([]*Event, error)
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

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEvent: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.Service.CreateEvent(dto)
	if err != nil {
		h.Logger.Error("CreateEvent: service error", "error", err)
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Status: "success",
		Data:   CreatedEventData{ID: event.ID, Title: event.Title},
	})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	skip := 0
	limit := 10

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	events, err := h.Service.ListEvents(skip, limit)
	if err != nil {
		h.Logger.Error("ListEvents: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	h.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Status: "success",
		Data:   events,
	})
}
