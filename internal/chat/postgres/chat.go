package postgres

import (
	"github.com/tvintergoller/keep-informed/internal/chat"
	chatDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/chat"
	"gorm.io/gorm"
)

// ChatRepository implements the chat.Repository interface using GORM
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) chat.Repository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(message *chatDatamodel.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *ChatRepository) GetBetween(userA, userB int64) ([]*chatDatamodel.ChatMessage, error) {
	var messages []*chatDatamodel.ChatMessage
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}

func (r *ChatRepository) GetByParticipant(userID int64) ([]*chatDatamodel.ChatMessage, error) {
	var messages []*chatDatamodel.ChatMessage
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}
