package activity

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tvintergoller/keep-informed/internal"
	"github.com/tvintergoller/keep-informed/internal/transport"
	"github.com/tvintergoller/keep-informed/pkg/logger"
)

type ServiceAPI interface {
	LogActivity(userID int64, dto LogActivityDTO) (*LogEntry, error)
	GenerateReport(start, end time.Time) (Report, error)
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

// parseDate accepts either a full RFC 3339 timestamp or a bare date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *Handler) LogActivity(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == 0 {
		h.Logger.Error("LogActivity: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	var dto LogActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("LogActivity: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Service.LogActivity(userID, dto); err != nil {
		h.Logger.Error("LogActivity: service error", "error", err, "user_id", userID)
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, LogActivityResponse{Message: "activity recorded"})
}

func (h *Handler) ActivityReport(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		h.Logger.Error("ActivityReport: invalid start_date", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid start_date")
		return
	}

	end, err := parseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		h.Logger.Error("ActivityReport: invalid end_date", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	report, err := h.Service.GenerateReport(start, end)
	if err != nil {
		h.Logger.Error("ActivityReport: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}
