package news

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
	CreateNews(dto CreateNewsDTO, authorID int64) (*News, error)
	ListNews() ([]*News, error)
	DeleteNews(newsID, callerID int64) error
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

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	authorID, ok := callerID(r)
	if !ok {
		h.Logger.Error("CreateNews: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	var dto CreateNewsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateNews: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.CreateNews(dto, authorID)
	if err != nil {
		h.Logger.Error("CreateNews: service error", "error", err, "author_id", authorID)
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListNews()
	if err != nil {
		h.Logger.Error("ListNews: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list news")
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(r)
	if !ok {
		h.Logger.Error("DeleteNews: missing or invalid user_id")
		h.WriteError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	newsIDStr := chi.URLParam(r, "id")
	newsID, err := strconv.ParseInt(newsIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteNews: invalid news ID", "id", newsIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	if err := h.Service.DeleteNews(newsID, caller); err != nil {
		h.Logger.Error("DeleteNews: service error", "error", err, "news_id", newsID, "caller_id", caller)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
