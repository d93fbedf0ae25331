package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tvintergoller/keep-informed/internal/transport"
	"github.com/tvintergoller/keep-informed/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	SendMessage(dto SendMessageDTO) (*Message, error)
	MessagesBetween(userA, userB int64) ([]*Message, error)
	Correspondents(userID int64) ([]int64, error)
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

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var dto SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SendMessage: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.Service.SendMessage(dto)
	if err != nil {
		h.Logger.Error("SendMessage: service error", "error", err)
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, message)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userA, errA := strconv.ParseInt(chi.URLParam(r, "userA"), 10, 64)
	userB, errB := strconv.ParseInt(chi.URLParam(r, "userB"), 10, 64)
	if errA != nil || errB != nil {
		h.Logger.Error("GetConversation: invalid user IDs")
		h.WriteError(w, http.StatusBadRequest, "invalid user IDs")
		return
	}

	messages, err := h.Service.MessagesBetween(userA, userB)
	if err != nil {
		h.Logger.Error("GetConversation: service error", "error", err,
			"user_a", userA, "user_b", userB)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, messages)
}

func (h *Handler) GetCorrespondents(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetCorrespondents: invalid user ID", "id", userIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	correspondents, err := h.Service.Correspondents(userID)
	if err != nil {
		h.Logger.Error("GetCorrespondents: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ConversationsResponse{ChatsWithUsers: correspondents})
}
