package chat

import (
	"log/slog"
	"time"

	"github.com/tvintergoller/keep-informed/internal"
	chatDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/chat"
)

// Repository defines the data access methods for direct messages
type Repository interface {
	Create(message *chatDatamodel.ChatMessage) error
	GetBetween(userA, userB int64) ([]*chatDatamodel.ChatMessage, error)
	GetByParticipant(userID int64) ([]*chatDatamodel.ChatMessage, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SendMessage stores a message; sender and receiver ids come from the caller.
func (s *Service) SendMessage(dto SendMessageDTO) (*Message, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &chatDatamodel.ChatMessage{
		Text:       dto.Text,
		SenderID:   dto.SenderID,
		ReceiverID: dto.ReceiverID,
		Timestamp:  time.Now(),
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to send message", "error", err,
			"sender_id", dto.SenderID, "receiver_id", dto.ReceiverID)
		return nil, err
	}

	s.logger.Info("message sent", "message_id", record.ID,
		"sender_id", record.SenderID, "receiver_id", record.ReceiverID)

	return FromDataModel(record), nil
}

// MessagesBetween returns the conversation between two users in chronological
// order. An empty conversation reports ErrMessagesNotFound.
func (s *Service) MessagesBetween(userA, userB int64) ([]*Message, error) {
	records, err := s.repo.GetBetween(userA, userB)
	if err != nil {
		s.logger.Error("failed to load conversation", "error", err,
			"user_a", userA, "user_b", userB)
		return nil, err
	}

	if len(records) == 0 {
		return nil, internal.ErrMessagesNotFound
	}

	return FromDataModelSlice(records), nil
}

// Correspondents returns the distinct ids a user has exchanged messages with,
// in order of first appearance in the user's message history. No messages at
// all reports ErrConversationsNotFound.
func (s *Service) Correspondents(userID int64) ([]int64, error) {
	records, err := s.repo.GetByParticipant(userID)
	if err != nil {
		s.logger.Error("failed to load correspondents", "error", err, "user_id", userID)
		return nil, err
	}

	seen := make(map[int64]bool)
	var correspondents []int64
	for _, msg := range records {
		other := msg.SenderID
		if other == userID {
			other = msg.ReceiverID
		}
		if other == userID || seen[other] {
			continue
		}
		seen[other] = true
		correspondents = append(correspondents, other)
	}

	if len(correspondents) == 0 {
		return nil, internal.ErrConversationsNotFound
	}

	return correspondents, nil
}
